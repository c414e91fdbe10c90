package scan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobtracker/pkg/domain"
)

func TestMatchApplication(t *testing.T) {
	apps := []domain.Application{
		{ID: 1, CompanyName: "Acme Corp", RoleTitle: "Senior Go Engineer"},
		{ID: 2, CompanyName: "Globex", RoleTitle: "Data Scientist"},
		{ID: 3, CompanyName: "Initech"},
	}

	t.Run("company substring wins", func(t *testing.T) {
		best := matchApplication(domain.Email{
			Subject: "Interview at Acme Corp",
			Sender:  "recruiter@acme.com",
		}, apps)
		require.NotNil(t, best)
		require.Equal(t, domain.ApplicationID(1), best.ID)
	})

	t.Run("role substring counts", func(t *testing.T) {
		best := matchApplication(domain.Email{
			Subject: "Update on the Data Scientist position",
			Sender:  "noreply@hire.example.com",
		}, apps)
		require.NotNil(t, best)
		require.Equal(t, domain.ApplicationID(2), best.ID)
	})

	t.Run("keyword overlap alone can reach the threshold", func(t *testing.T) {
		// both company words appear, but never as the exact phrase "Acme Corp"
		best := matchApplication(domain.Email{
			Subject: "Corp news from Acme",
			Sender:  "someone@mail.example.com",
		}, apps)
		require.NotNil(t, best)
		require.Equal(t, domain.ApplicationID(1), best.ID)
	})

	t.Run("below threshold returns nil", func(t *testing.T) {
		require.Nil(t, matchApplication(domain.Email{
			Subject: "Your weekly newsletter",
			Sender:  "news@digest.example.com",
		}, apps))
	})

	t.Run("no applications", func(t *testing.T) {
		require.Nil(t, matchApplication(domain.Email{Subject: "Interview at Acme Corp"}, nil))
	})
}

func TestExtractKeywords(t *testing.T) {
	got := extractKeywords("Re: Your Application for Senior Go Engineer at Acme")
	// filler words and short words are dropped; "go" is only two characters
	require.Equal(t, map[string]struct{}{
		"senior":   {},
		"engineer": {},
		"acme":     {},
	}, got)
}
