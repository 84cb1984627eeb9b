package service

import (
	"strings"
	"unicode/utf8"

	"github.com/devconnect-app/backend/internal/types"
)

const (
	handleMinLen = 2
	handleMaxLen = 40
	postTextMin  = 10
	postTextMax  = 300
)

// validateProfileInput checks the profile upsert body. Every violated field
// is reported, keyed by field name.
func validateProfileInput(req *types.UpsertProfileRequest) types.ValidationError {
	errs := types.ValidationError{}

	switch n := utf8.RuneCountInString(req.Handle); {
	case req.Handle == "":
		errs["handle"] = "handle is required"
	case n < handleMinLen || n > handleMaxLen:
		errs["handle"] = "handle must be between 2 and 40 characters"
	}

	if req.Status == "" {
		errs["status"] = "status is required"
	}
	if req.Skills == "" {
		errs["skills"] = "skills is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validatePostInput checks the post creation body.
func validatePostInput(req *types.CreatePostRequest) types.ValidationError {
	errs := types.ValidationError{}

	switch n := utf8.RuneCountInString(req.Text); {
	case req.Text == "":
		errs["text"] = "text is required"
	case n < postTextMin || n > postTextMax:
		errs["text"] = "text must be between 10 and 300 characters"
	}

	if req.Name == "" {
		errs["name"] = "name is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// splitSkills decomposes the comma-separated skills string into trimmed,
// order-preserving tokens.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
