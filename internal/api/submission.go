package api

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"leadership-assessment-backend/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidSubmission = errors.New("invalid submission")

const (
	answerFieldPrefix = "answer."
	styleFieldPrefix  = "style."
)

// DecodeSubmission turns a posted assessment form into typed responses.
//
// The form rendered by this service posts answer.<i> with the selected value and
// style.<i> with the question's style. Fields shaped like <style>_<suffix> are
// also accepted; the style is everything before the first underscore.
// Unanswered questions simply have no answer field and are not scored.
func DecodeSubmission(form url.Values) (model.Submission, error) {
	type legacyField struct {
		key      string
		response model.Response
	}
	var typed []model.Response
	var legacy []legacyField

	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(key, answerFieldPrefix):
			suffix := strings.TrimPrefix(key, answerFieldPrefix)
			idx, err := strconv.Atoi(suffix)
			if err != nil || idx < 0 {
				return model.Submission{}, fmt.Errorf("%w: field %q has no question index", ErrInvalidSubmission, key)
			}
			typed = append(typed, model.Response{
				Index: idx,
				Style: strings.TrimSpace(form.Get(styleFieldPrefix + suffix)),
				Value: values[0],
			})
		case strings.HasPrefix(key, styleFieldPrefix):
			// consumed together with its answer field
		default:
			style, _, found := strings.Cut(key, "_")
			if !found {
				return model.Submission{}, fmt.Errorf("%w: field %q does not name a style", ErrInvalidSubmission, key)
			}
			legacy = append(legacy, legacyField{key: key, response: model.Response{Style: style, Value: values[0]}})
		}
	}

	sort.Slice(typed, func(i, j int) bool { return typed[i].Index < typed[j].Index })
	sort.Slice(legacy, func(i, j int) bool { return legacy[i].key < legacy[j].key })

	sub := model.Submission{Responses: typed}
	next := 0
	if len(typed) > 0 {
		next = typed[len(typed)-1].Index + 1
	}
	for _, f := range legacy {
		r := f.response
		r.Index = next
		next++
		sub.Responses = append(sub.Responses, r)
	}

	if err := ValidateSubmission(sub); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// ValidateSubmission checks every response against the model's binding tags.
func ValidateSubmission(sub model.Submission) error {
	err := binding.Validator.ValidateStruct(&sub)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeFieldError(sub, fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidSubmission, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
}

func describeFieldError(sub model.Submission, fe validator.FieldError) string {
	// Namespace looks like Submission.Responses[3].Value
	ns := fe.Namespace()
	if open := strings.Index(ns, "["); open >= 0 {
		if end := strings.Index(ns[open:], "]"); end > 0 {
			if i, err := strconv.Atoi(ns[open+1 : open+end]); err == nil && i < len(sub.Responses) {
				r := sub.Responses[i]
				switch fe.Tag() {
				case "oneof":
					return fmt.Sprintf("question %d: value %q is not one of 1-5", r.Index, r.Value)
				case "required":
					return fmt.Sprintf("question %d: %s is required", r.Index, strings.ToLower(fe.Field()))
				}
			}
		}
	}
	return fmt.Sprintf("%s failed %q", ns, fe.Tag())
}
