package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

func Test_ValidateEventDraft(t *testing.T) {
	valid := core.EventDraft{
		Title:       "Go Meetup",
		Date:        "2026-11-20",
		Location:    "Berlin",
		Category:    "meetup",
		Description: "Talks and pizza",
		Capacity:    50,
	}

	testCases := []struct {
		name          string
		mutate        func(*core.EventDraft)
		expectedField string
		expectedMsg   string
	}{
		{name: "valid", mutate: func(*core.EventDraft) {}},
		{name: "blank title", mutate: func(d *core.EventDraft) { d.Title = "  " }, expectedField: core.FieldTitle, expectedMsg: core.ReasonTitleRequired},
		{name: "missing date", mutate: func(d *core.EventDraft) { d.Date = "" }, expectedField: core.FieldDate, expectedMsg: core.ReasonDateRequired},
		{name: "missing location", mutate: func(d *core.EventDraft) { d.Location = "" }, expectedField: core.FieldLocation, expectedMsg: core.ReasonLocationRequired},
		{name: "missing description", mutate: func(d *core.EventDraft) { d.Description = "" }, expectedField: core.FieldDescription, expectedMsg: core.ReasonDescriptionRequired},
		{name: "zero capacity", mutate: func(d *core.EventDraft) { d.Capacity = 0 }, expectedField: core.FieldCapacity, expectedMsg: core.ReasonCapacityTooLow},
		{name: "huge capacity", mutate: func(d *core.EventDraft) { d.Capacity = core.MaxEventCapacity + 1 }, expectedField: core.FieldCapacity, expectedMsg: core.ReasonCapacityTooHigh},
		{name: "largest capacity", mutate: func(d *core.EventDraft) { d.Capacity = core.MaxEventCapacity }},
		{name: "unknown category", mutate: func(d *core.EventDraft) { d.Category = "party" }, expectedField: core.FieldCategory, expectedMsg: core.ReasonCategoryInvalid},
		{
			name: "first failing field wins",
			mutate: func(d *core.EventDraft) {
				d.Location = ""
				d.Capacity = -1
			},
			expectedField: core.FieldLocation,
			expectedMsg:   core.ReasonLocationRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)

			err := core.ValidateEventDraft(draft)

			if tc.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *core.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedField, validationErr.Field)
			assert.EqualError(t, err, tc.expectedMsg)
		})
	}
}

func Test_ValidateContactDetails_ReportsFirstMissingField(t *testing.T) {
	err := core.ValidateContactDetails(core.ContactDetails{FirstName: "Ada", Email: "ada@example.com"})

	assert.ErrorIs(t, err, core.ErrValidation)
	assert.EqualError(t, err, core.ReasonLastNameRequired)

	err = core.ValidateContactDetails(core.ContactDetails{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})

	assert.EqualError(t, err, core.ReasonPhoneRequired)
}

func Test_ValidatePassword_CountsCharacters(t *testing.T) {
	assert.Error(t, core.ValidatePassword("12345"))
	assert.NoError(t, core.ValidatePassword("123456"))
	assert.NoError(t, core.ValidatePassword("äöüßéè"))
}

func Test_ValidatePassword_BoundsBytes(t *testing.T) {
	assert.NoError(t, core.ValidatePassword(strings.Repeat("a", core.MaxPasswordBytes)))
	assert.EqualError(t, core.ValidatePassword(strings.Repeat("a", core.MaxPasswordBytes+1)), core.ReasonPasswordTooLong)
	assert.EqualError(t, core.ValidatePassword(strings.Repeat("ä", 37)), core.ReasonPasswordTooLong)
}

func Test_ProfileChanges_ApplyTo_KeepsNilFields(t *testing.T) {
	profile := core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Company: "Analytical"}
	newCompany := ""
	newEmail := "countess@example.com"

	changed := core.ProfileChanges{Email: &newEmail, Company: &newCompany}.ApplyTo(profile)

	assert.Equal(t, core.UserProfile{Email: newEmail, FirstName: "Ada", LastName: "Lovelace"}, changed)
}
