package seed

import (
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed_NamedCast(t *testing.T) {
	st := store.New()
	require.NoError(t, Seed(st, Options{}))

	admin := st.Users.GetByEmail("admin@skillswap.com")
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin())

	john := st.Users.GetByEmail("john@example.com")
	require.NotNil(t, john)
	assert.Equal(t, "John Doe", john.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(john.Password), []byte(DemoPassword)))

	johnSkills := st.Skills.ListByUserID(john.ID)
	require.Len(t, johnSkills, 2)
	for _, sk := range johnSkills {
		assert.True(t, sk.IsApproved)
	}

	// one pending negotiation and one completed swap with both ratings
	var pending, completed int
	for _, sw := range st.Swaps.ListAll() {
		switch sw.Status {
		case models.SwapStatusPending:
			pending++
		case models.SwapStatusCompleted:
			completed++
			assert.Len(t, st.Ratings.ListAll(), 2)
		}
	}
	assert.Equal(t, 1, pending)
	assert.Equal(t, 1, completed)

	assert.Len(t, st.Broadcasts.ListActive(), 1)
	assert.Len(t, st.Broadcasts.ListAll(), 2)
}

func TestSeed_Idempotent(t *testing.T) {
	st := store.New()
	require.NoError(t, Seed(st, Options{}))
	before := len(st.Users.ListAll())

	// Reseeding must not duplicate the named cast.
	require.NoError(t, Seed(st, Options{}))
	assert.Equal(t, before, len(st.Users.ListAll()))
}

func TestSeed_ExtraUsers(t *testing.T) {
	st := store.New()
	require.NoError(t, Seed(st, Options{NumExtraUsers: 5}))
	assert.Len(t, st.Users.ListAll(), len(demoCast)+5)
}
