package report

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"building-navigation-system/internal/building"
)

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	h, err := building.NewHouse("Grace's House", "102 Lake St", 2, true, false,
		building.WithReporter(NewConsoleReporter(&buf)))
	require.NoError(t, err)

	h.MoveIn("Grace")
	h.MoveOut("Jordan")
	_, err = h.Enter()
	require.NoError(t, err)
	require.NoError(t, h.GoUp())

	assert.Equal(t, "You have built a house: 🏠\n"+
		"Grace has moved in.\n"+
		"Error! Jordan is not a resident of Grace's House\n"+
		"You are now inside Grace's House on the ground floor.\n"+
		"You are now on floor #2 of Grace's House.\n", buf.String())
}

func TestMessageSilentEvents(t *testing.T) {
	assert.Empty(t, Message(building.Event{Kind: building.EventCoffeeSold}))
	assert.Empty(t, Message(building.Event{Kind: building.EventTitleAdded}))
	assert.Equal(t, "Error! X is not available.", Message(building.Event{Kind: building.EventTitleUnavailable, Subject: "X"}))
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := building.DefaultLibrary(building.WithReporter(NewLogReporter(zap.New(core))))

	l.AddTitle("Macbeth")
	l.CheckOut("Macbeth")
	l.CheckOut("Macbeth")

	require.Equal(t, 4, logs.Len())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, string(building.EventTitleUnavailable), fields["kind"])
	assert.Equal(t, "Macbeth", fields["subject"])
	assert.Equal(t, building.DefaultName, fields["building"])
}

func TestMetricsReporter(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetricsReporter(reg)
	require.NoError(t, err)

	c, err := building.NewCafe("Kawiarnia", "Rynek 5", 1, building.WithReporter(metrics))
	require.NoError(t, err)

	_, err = c.Enter()
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Occupied.WithLabelValues("Kawiarnia")))

	c.SellCoffee(250, 1, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.EventsTotal.WithLabelValues("Kawiarnia", "restocked")))
	assert.Equal(t, float64(-30), testutil.ToFloat64(metrics.CoffeeStock.WithLabelValues("Kawiarnia", "coffee_ounces")))

	require.NoError(t, c.Exit())
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Occupied.WithLabelValues("Kawiarnia")))

	_, err = NewMetricsReporter(reg)
	require.Error(t, err, "duplicate registration must fail")
}

func TestMulti(t *testing.T) {
	var first, second []building.EventKind
	r := Multi(
		building.ReporterFunc(func(e building.Event) { first = append(first, e.Kind) }),
		nil,
		building.ReporterFunc(func(e building.Event) { second = append(second, e.Kind) }),
	)

	building.DefaultHouse(building.WithReporter(r)).MoveIn("A")

	assert.Equal(t, []building.EventKind{building.EventBuilt, building.EventMovedIn}, first)
	assert.Equal(t, first, second)
}

func TestRenderInventory(t *testing.T) {
	var buf bytes.Buffer
	c, err := building.NewCafe("Grace's Cafe", "228 Random Street", 2)
	require.NoError(t, err)
	c.SellCoffee(16, 1, 1)

	require.NoError(t, RenderInventory(&buf, c))
	assert.Equal(t, "Coffee backstock = 184 ounces\n"+
		"Sugar backstock = 299 packets\n"+
		"Cream backstock = 99 servings\n"+
		"Cups backstock = 399 cups\n", buf.String())
}

func TestRenderCollection(t *testing.T) {
	var buf bytes.Buffer
	l := building.DefaultLibrary()
	l.AddTitle("Macbeth")
	l.AddTitle("Little Women")
	l.CheckOut("Little Women")

	require.NoError(t, RenderCollection(&buf, l))
	assert.Equal(t, "Title\t\t\tStatus\n"+
		"-------------------------------------\n"+
		"Little Women\t\t\tNot Available\n"+
		"Macbeth\t\t\tAvailable\n", buf.String())
}

func TestRenderOptionsAndResidents(t *testing.T) {
	var buf bytes.Buffer
	h, err := building.NewHouse("Dom", "Lipowa 1", 2, false, false)
	require.NoError(t, err)
	h.MoveIn("Kira")
	h.MoveIn("Fiadh")

	require.NoError(t, RenderOptions(&buf, h))
	assert.Contains(t, buf.String(), "Available options at Dom:\n + Enter()\n")
	assert.Contains(t, buf.String(), " + MoveOut(name)\n")

	buf.Reset()
	require.NoError(t, RenderResidents(&buf, h))
	assert.Equal(t, "[Kira Fiadh]\nThere are 2 residents living at Lipowa 1\n", buf.String())
}
