package profile

import "errors"

var (
	ErrSessionNotFound     = errors.New("profile session not found")
	ErrUnknownField        = errors.New("unknown profile field")
	ErrCharacterNotAllowed = errors.New("value contains characters the field does not accept")
	ErrValueTooLong        = errors.New("value exceeds the field's character limit")
	ErrInvalidValue        = errors.New("value is not allowed for this field")
	ErrUnknownCountry      = errors.New("nationality is not in the country catalog")
	ErrUnknownSport        = errors.New("sport is not in the catalog")
	ErrSportNotSelected    = errors.New("sport is not selected on this profile")
	ErrUnknownStatField    = errors.New("stat field does not exist for this sport")
	ErrUnknownLanguage     = errors.New("language is not in the catalog")
	ErrIncompleteRecord    = errors.New("record is missing required fields")
	ErrRecordNotFound      = errors.New("record not found")
	ErrEditorOpen          = errors.New("an entry form is already open")
	ErrNoEditInProgress    = errors.New("no edit in progress")
	ErrStepInvalid         = errors.New("current step has unresolved problems")
	ErrStepLocked          = errors.New("step has not been unlocked yet")
	ErrNotFinalStep        = errors.New("submit is only allowed from the final step")
)
