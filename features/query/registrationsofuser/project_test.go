package registrationsofuser_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/query/registrationsofuser"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func Test_ProjectDashboard(t *testing.T) {
	// arrange
	now := time.Now()
	userID := uuid.New()
	meetupID, workshopID, concertID := uuid.New(), uuid.New(), uuid.New()
	contact := core.ContactDetails{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "1"}
	history := core.DomainEvents{
		core.BuildTicketsRegistered(meetupID, userID, "Go Meetup", 2, contact, now.Add(-3*time.Hour)),
		core.BuildTicketsRegistered(workshopID, userID, "Kafka Workshop", 1, contact, now.Add(-2*time.Hour)),
		core.BuildTicketsRegistered(concertID, userID, "Jazz Night", 4, contact, now.Add(-time.Hour)),
		core.BuildTicketsRegistered(meetupID, userID, "Go Meetup", 1, contact, now),
		core.BuildRegistrationCanceled(concertID, userID, 4, now),
	}

	// act
	dashboard := registrationsofuser.ProjectDashboard(history, registrationsofuser.BuildQuery(userID), core.DefaultPricing())

	// assert
	require.Len(t, dashboard.Registrations, 2)
	assert.Equal(t, "Kafka Workshop", dashboard.Registrations[0].EventTitle)
	assert.Equal(t, "Go Meetup", dashboard.Registrations[1].EventTitle)
	assert.Equal(t, 3, dashboard.Registrations[1].TicketCount)
	assert.Equal(t, registrationsofuser.Stats{EventsRegistered: 2, TotalTickets: 4, TotalSpent: 216}, dashboard.Stats)
}

func Test_ProjectDashboard_NoRegistrations(t *testing.T) {
	// act
	dashboard := registrationsofuser.ProjectDashboard(core.DomainEvents{}, registrationsofuser.BuildQuery(uuid.New()), core.DefaultPricing())

	// assert
	assert.Empty(t, dashboard.Registrations)
	assert.Equal(t, registrationsofuser.Stats{}, dashboard.Stats)
}
