package service

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/friendgraph/internal/graph"
	"github.com/persistorai/friendgraph/internal/models"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// fixtureGraph is the chain A-B-C plus the isolated node D.
func fixtureGraph(t *testing.T) *graph.Graph {
	t.Helper()

	return graph.Build([]models.Record{
		{ID: "A", Friends: []string{"B"}},
		{ID: "B", Friends: []string{"C"}},
		{ID: "D", Friends: []string{""}},
	}, graph.BuildOptions{})
}
