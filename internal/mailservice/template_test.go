package mailservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okuznetsov/blogware/internal/commentservice"
)

func TestParseTemplate(t *testing.T) {
	template := &Template{}

	testCases := []struct {
		name         string
		templateName string
		data         any
		expectedErr  bool
	}{
		{
			name:         "success",
			templateName: "comment_notification.html",
			data: commentservice.CommentCreatedEvent{
				PostHeader:     "A Post",
				CommentAuthor:  "Reader",
				CommentText:    "Great read!",
				RecipientEmail: "author@example.com",
				RecipientName:  "Author",
			},
			expectedErr: false,
		},
		{
			name:         "invalid template name",
			templateName: "invalid_template.html",
			data:         nil,
			expectedErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p, h, err := template.ParseTemplate(tc.templateName, tc.data)
			assert.Equal(t, tc.expectedErr, err != nil)

			if err == nil {
				assert.Contains(t, s.String(), "A Post")
				assert.Contains(t, p.String(), "Great read!")
				assert.Contains(t, h.String(), "Reader")
			}
		})
	}
}
