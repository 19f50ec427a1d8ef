package validators

import (
	"context"
	"testing"

	"github.com/sravani-k-5/vidspark-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0190c7e5-9f3a-7b7e-8a4d-1c2b3a4d5e6f"
	testVideoID = "0190c7e5-aaaa-7b7e-8a4d-1c2b3a4d5e6f"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUser() models.User {
	return models.User{Name: "alice", Email: "alice@example.com", Password: "secret"}
}

func validComment() models.Comment {
	return models.Comment{UserID: testUserID, VideoID: testVideoID, Text: "nice"}
}

func validUpload() models.VideoUpload {
	return models.VideoUpload{
		FileName:    "clip.mp4",
		Size:        10,
		Title:       "Sunset",
		Category:    "travel",
		Description: "timelapse over the bay",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("values and pointers", func(t *testing.T) {
		u, c, up := validUser(), validComment(), validUpload()
		for _, obj := range []any{u, &u, c, &c, up, &up} {
			assert.NoError(t, v.Validate(ctx, obj))
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validUser(), "hash"), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, validComment(), FieldPassword), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, validUpload(), FieldText), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestValidateUser(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.User)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.User) {}},
		{name: "no name", mutate: func(u *models.User) { u.Name = "" }, wantErr: ErrEmptyName},
		{name: "no email", mutate: func(u *models.User) { u.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "no password", mutate: func(u *models.User) { u.Password = "" }, wantErr: ErrEmptyPassword},
		{
			name:   "name not requested",
			mutate: func(u *models.User) { u.Name = "" },
			fields: []string{FieldEmail, FieldPassword},
		},
		{
			name:    "bad user id",
			mutate:  func(u *models.User) { u.UserID = "42" },
			fields:  []string{FieldUserID},
			wantErr: ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			err := v.Validate(ctx, u, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestValidateComment(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Comment)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Comment) {}},
		{name: "empty text", mutate: func(c *models.Comment) { c.Text = "" }, wantErr: ErrEmptyText},
		{name: "no author", mutate: func(c *models.Comment) { c.UserID = "" }, wantErr: ErrInvalidUserID},
		{name: "malformed video id", mutate: func(c *models.Comment) { c.VideoID = "abc" }, wantErr: ErrInvalidVideoID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComment()
			tt.mutate(&c)
			err := v.Validate(ctx, c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Uploads
// ---------------------------------------------------------------------------

func TestValidateVideoUpload(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	for _, name := range []string{"", ".", "/", "dir/clip.mp4"} {
		up := validUpload()
		up.FileName = name
		assert.ErrorIs(t, v.Validate(ctx, up), ErrNoFileName, "file name %q", name)
	}

	up := validUpload()
	up.Size = -1
	assert.ErrorIs(t, v.Validate(ctx, up), ErrInvalidSize)
	assert.NoError(t, v.Validate(ctx, up, FieldFileName))
}

func TestValidateVideoUpload_Metadata(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.VideoUpload)
		wantErr error
	}{
		{name: "no title", mutate: func(u *models.VideoUpload) { u.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "no category", mutate: func(u *models.VideoUpload) { u.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "no description", mutate: func(u *models.VideoUpload) { u.Description = "" }, wantErr: ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := validUpload()
			tt.mutate(&up)
			assert.ErrorIs(t, v.Validate(ctx, up), tt.wantErr)
			assert.NoError(t, v.Validate(ctx, up, FieldFileName, FieldSize))
		})
	}
}
