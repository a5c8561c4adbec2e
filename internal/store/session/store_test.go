package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecords keeps records in memory so store tests never touch the
// filesystem.
type fakeRecords struct {
	data     map[string][]byte
	failSave bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{data: make(map[string][]byte)}
}

func (f *fakeRecords) Load(key string, v interface{}) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeRecords) Save(key string, v interface{}) error {
	if f.failSave {
		return errors.New("disk full")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeRecords) Remove(key string) error {
	delete(f.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestSignupPersistsAcrossRestart(t *testing.T) {
	records := newFakeRecords()

	store, err := New(records, nil, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, store.Current())

	user, err := store.Signup(SignupInput{
		Name:   "Jamie",
		Email:  "jamie@example.com",
		Skills: []string{"Go"},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, user)

	// Simulate a restart by building a fresh store over the same records.
	restarted, err := New(records, nil, nopLogger{})
	require.NoError(t, err)
	restored := restarted.Current()
	require.NotNil(t, restored)
	assert.Equal(t, user.Id, restored.Id)
	assert.Equal(t, "Jamie", restored.Name)
	assert.Equal(t, []string{"Go"}, restored.Skills)
}

func TestLoginReplacesCurrentUser(t *testing.T) {
	store, err := New(newFakeRecords(), nil, nopLogger{})
	require.NoError(t, err)

	first, err := store.Signup(SignupInput{Name: "Jamie", Email: "jamie@example.com", Skills: []string{"Go"}}, nil)
	require.NoError(t, err)

	demo, err := store.Login("other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", demo.Name)
	assert.Equal(t, "other@example.com", demo.Email)
	assert.NotEqual(t, first.Id, demo.Id)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, demo.Id, current.Id)
}

func TestLogoutClearsSessionAndRecord(t *testing.T) {
	records := newFakeRecords()
	store, err := New(records, nil, nopLogger{})
	require.NoError(t, err)

	_, err = store.Login("jamie@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.Nil(t, store.Current())
	_, ok := records.data[RecordKey]
	assert.False(t, ok)

	restarted, err := New(records, nil, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, restarted.Current())
}

func TestMutationsWithoutSession(t *testing.T) {
	store, err := New(newFakeRecords(), nil, nopLogger{})
	require.NoError(t, err)

	name := "x"
	_, err = store.UpdateProfile(ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = store.AddSkill("Go")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = store.RemoveSkill("Go")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	records := newFakeRecords()
	records.failSave = true

	store, err := New(records, nil, nopLogger{})
	require.NoError(t, err)

	user, err := store.Signup(SignupInput{Name: "Jamie", Email: "jamie@example.com", Skills: []string{"Go"}}, nil)
	assert.ErrorIs(t, err, ErrRecordNotPersisted)
	require.NotNil(t, user)

	// The session is still live for this process.
	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.Id, current.Id)

	updated, err := store.AddSkill("React")
	assert.ErrorIs(t, err, ErrRecordNotPersisted)
	assert.Equal(t, []string{"Go", "React"}, updated.Skills)
}

func TestSkillMutations(t *testing.T) {
	store, err := New(newFakeRecords(), nil, nopLogger{})
	require.NoError(t, err)

	_, err = store.Signup(SignupInput{Name: "Jamie", Email: "jamie@example.com", Skills: []string{"Go"}}, nil)
	require.NoError(t, err)

	user, err := store.AddSkill("React")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "React"}, user.Skills)

	// duplicate add leaves the list unchanged
	user, err = store.AddSkill("React")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "React"}, user.Skills)

	user, err = store.RemoveSkill("Go")
	require.NoError(t, err)
	assert.Equal(t, []string{"React"}, user.Skills)

	// removing an absent skill is a no-op
	user, err = store.RemoveSkill("Go")
	require.NoError(t, err)
	assert.Equal(t, []string{"React"}, user.Skills)
}

func TestUpdatesPublished(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, TopicUpdates)
	require.NoError(t, err)

	store, err := New(newFakeRecords(), pubSub, nopLogger{})
	require.NoError(t, err)

	_, err = store.Signup(SignupInput{Name: "Jamie", Email: "jamie@example.com", Skills: []string{"Go"}}, nil)
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var update Update
		require.NoError(t, json.Unmarshal(msg.Payload, &update))
		assert.Equal(t, "session_started", update.Type)
		require.NotNil(t, update.User)
		assert.Equal(t, "Jamie", update.User.Name)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a session update to be published")
	}
}
