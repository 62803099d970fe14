package selection_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dshills/crux/internal/event"
	mockevent "github.com/dshills/crux/internal/event/mock"
	"github.com/dshills/crux/internal/selection"
)

type ListenerSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	sink  *mockevent.MockSink
	model *selection.Model[string, string]
	seen  []selection.Change[string]
}

func TestListenerSuite(t *testing.T) {
	suite.Run(t, new(ListenerSuite))
}

func (s *ListenerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sink = mockevent.NewMockSink(s.ctrl)
	s.model = selection.New[string](
		event.WithName("files"),
		event.WithCounters(event.NewCounters()),
		event.WithSink(s.sink),
	)
	s.seen = nil
}

func (s *ListenerSuite) record(c selection.Change[string]) error {
	s.seen = append(s.seen, c)
	return nil
}

func (s *ListenerSuite) TestName() {
	s.Equal("files", s.model.Name())
}

func (s *ListenerSuite) TestOnceListener() {
	s.model.OnFunc(selection.EventChange, s.record, event.WithOnce())

	s.NoError(s.model.Select("a"))
	s.NoError(s.model.Select("b"))

	s.Len(s.seen, 1)
	s.Equal([]string{"a"}, s.seen[0].Added)
}

func (s *ListenerSuite) TestLoggedListenerWritesToSink() {
	s.sink.EXPECT().Record(event.Record{
		Bus:     "files",
		Event:   string(selection.EventChange),
		Payload: selection.Change[string]{Added: []string{"a"}, Removed: []string{}},
	}).Times(1)

	s.model.OnFunc(selection.EventChange, s.record, event.WithLog())
	s.NoError(s.model.Select("a"))
}

func (s *ListenerSuite) TestOffByReference() {
	listener := event.Func(s.record)
	s.model.On(selection.EventChange, listener)
	s.model.On(selection.EventChange, listener)

	s.NoError(s.model.Toggle("a"))
	s.Len(s.seen, 2, "each registration is invoked")

	s.True(s.model.Off(selection.EventChange, listener))
	s.NoError(s.model.Toggle("a"))
	s.Len(s.seen, 2)
}

func (s *ListenerSuite) TestOffByID() {
	id := s.model.OnFunc(selection.EventChange, s.record)
	s.True(s.model.OffID(selection.EventChange, id))
	s.False(s.model.OffID(selection.EventChange, id))

	s.NoError(s.model.Clear())
	s.Empty(s.seen)
}

func (s *ListenerSuite) TestDestroyDropsListeners() {
	s.model.OnFunc(selection.EventChange, s.record)
	s.NoError(s.model.Select("a"))

	s.model.Destroy()
	s.Zero(s.model.Count())

	s.NoError(s.model.Select("b"))
	s.Len(s.seen, 1)
}
