package testutil

import (
	"testing"

	"github.com/eliziario/credkeeper/internal/keystore"
	"github.com/eliziario/credkeeper/internal/prompt"
)

// MockStore is an in-memory keystore.Store for testing. It counts reads so
// tests can assert the session short-circuited before touching the store.
type MockStore struct {
	Records map[string]*keystore.Record

	ReadCalls   int
	WriteCalls  int
	DeleteCalls int

	WriteErr  error
	ReadErr   error
	DeleteErr error
}

func NewMockStore() *MockStore {
	return &MockStore{
		Records: make(map[string]*keystore.Record),
	}
}

func (m *MockStore) Write(target, username string, secret []byte) error {
	m.WriteCalls++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Records[target] = &keystore.Record{Username: username, Secret: secret}
	return nil
}

func (m *MockStore) Read(target string) (*keystore.Record, error) {
	m.ReadCalls++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	rec, ok := m.Records[target]
	if !ok {
		return nil, keystore.ErrNotFound
	}
	return rec, nil
}

func (m *MockStore) Delete(target string) (bool, error) {
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}
	_, ok := m.Records[target]
	delete(m.Records, target)
	return ok, nil
}

// SetRecord stores a record directly, bypassing the counters.
func (m *MockStore) SetRecord(target, username string, secret []byte) {
	m.Records[target] = &keystore.Record{Username: username, Secret: secret}
}

// MockPrompter replays a scripted response and records the requests it saw.
type MockPrompter struct {
	Response *prompt.Response
	Err      error

	Calls    int
	Requests []prompt.Request
}

func (m *MockPrompter) Prompt(req prompt.Request) (*prompt.Response, error) {
	m.Calls++
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// LastRequest returns the most recent prompt request, failing the test when
// no prompt happened.
func (m *MockPrompter) LastRequest(t *testing.T) prompt.Request {
	t.Helper()
	if len(m.Requests) == 0 {
		t.Fatal("expected at least one prompt invocation")
	}
	return m.Requests[len(m.Requests)-1]
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected an error, got nil")
	}
}

// AssertEqual checks if two values are equal
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
