package actions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreatePostInput is the input for CreatePost
type CreatePostInput struct {
	FileURL string `json:"fileUrl" validate:"required"`
	Caption string `json:"caption" validate:"omitempty,max=2200"`
}

// UpdatePostInput is the input for UpdatePost
type UpdatePostInput struct {
	ID      string `json:"id" validate:"required"`
	FileURL string `json:"fileUrl" validate:"required"`
	Caption string `json:"caption" validate:"omitempty,max=2200"`
}

// DeletePostInput is the input for DeletePost
type DeletePostInput struct {
	ID string `json:"id" validate:"required"`
}

// LikePostInput is the input for LikePost
type LikePostInput struct {
	PostID string `json:"postId" validate:"required"`
}

// BookmarkPostInput is the input for BookmarkPost
type BookmarkPostInput struct {
	PostID string `json:"postId" validate:"required"`
}

// CreateCommentInput is the input for CreateComment
type CreateCommentInput struct {
	PostID string `json:"postId" validate:"required"`
	Body   string `json:"body" validate:"required,max=2200"`
}

// DeleteCommentInput is the input for DeleteComment
type DeleteCommentInput struct {
	ID string `json:"id" validate:"required"`
}

// UpdateProfileInput is the input for UpdateProfile
type UpdateProfileInput struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Name     string `json:"name" validate:"omitempty,max=50"`
	Bio      string `json:"bio" validate:"omitempty,max=160"`
	Gender   string `json:"gender" validate:"omitempty,max=20"`
	Image    string `json:"image" validate:"omitempty,url"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// FollowUserInput is the input for FollowUser
type FollowUserInput struct {
	ID string `json:"id" validate:"required"`
}

// Validator checks input shape only; existence and ownership checks belong
// to the orchestrator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their json names
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate returns a field -> messages map, or nil when the input is valid
func (v *Validator) Validate(input interface{}) map[string][]string {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {"invalid input"}}
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		fields[field] = append(fields[field], fieldMessage(field, fe.Tag(), fe.Param()))
	}
	return fields
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
