package validators

import (
	"context"
	"strings"

	"github.com/sravani-k-5/vidspark-backend/internal/utils"
	"github.com/sravani-k-5/vidspark-backend/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUserID   = "user_id"
	FieldVideoID  = "video_id"
	FieldText     = "text"
	FieldFileName = "file_name"
	FieldSize     = "size"

	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldDescription = "description"
)

// DomainValidator checks users, comments and video uploads. It does not
// normalise its input; callers trim values before validating them.
type DomainValidator struct {
}

func NewDomainValidator() Validator {
	return &DomainValidator{}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Comment:
		return v.validateComment(ctx, value, fields...)
	case *models.Comment:
		return v.validateComment(ctx, *value, fields...)

	case models.VideoUpload:
		return v.validateVideoUpload(ctx, value, fields...)
	case *models.VideoUpload:
		return v.validateVideoUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUserID:
			if !utils.IsValidID(user.UserID) {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateComment(_ context.Context, comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldUserID, FieldVideoID}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if comment.Text == "" {
				return ErrEmptyText
			}
		case FieldUserID:
			// token subjects are opaque here; existence is the store's concern
			if comment.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldVideoID:
			if !utils.IsValidID(comment.VideoID) {
				return ErrInvalidVideoID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateVideoUpload(_ context.Context, upload models.VideoUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldSize, FieldTitle, FieldCategory, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			name := upload.FileName
			if name == "" || name == "." || name == "/" || strings.Contains(name, "/") {
				return ErrNoFileName
			}
		case FieldSize:
			if upload.Size < 0 {
				return ErrInvalidSize
			}
		case FieldTitle:
			if upload.Title == "" {
				return ErrEmptyTitle
			}
		case FieldCategory:
			if upload.Category == "" {
				return ErrEmptyCategory
			}
		case FieldDescription:
			if upload.Description == "" {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
