package dto

import (
	"github.com/Eursukkul/hustle-events/internal/draft"
)

// EventRequest is the event form body for create and update.
type EventRequest = draft.Event

// ProfileRequest is the body of a direct profile update.
type ProfileRequest = draft.Profile

// DraftPatchRequest carries the fields to change in a staged profile edit.
type DraftPatchRequest = draft.ProfilePatch

// FormIDHeader identifies one form instance; duplicate submits carrying the
// same value collapse into one.
const FormIDHeader = "X-Form-ID"
