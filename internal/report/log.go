package report

import (
	"go.uber.org/zap"

	"building-navigation-system/internal/building"
)

// LogReporter zapisuje zdarzenia budynków w logach strukturalnych
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter tworzy reporter logujący przez zap
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger}
}

// Report loguje zdarzenie. Błędy miękkie trafiają na poziom Warn.
func (l *LogReporter) Report(e building.Event) {
	fields := []zap.Field{
		zap.String("building", e.Building),
		zap.String("kind", string(e.Kind)),
	}
	if e.Floor != 0 {
		fields = append(fields, zap.Int("floor", e.Floor))
	}
	if e.Subject != "" {
		fields = append(fields, zap.String("subject", e.Subject))
	}
	if e.Stock != nil {
		fields = append(fields,
			zap.Int("coffee_ounces", e.Stock.CoffeeOunces),
			zap.Int("sugar_packets", e.Stock.SugarPackets),
			zap.Int("creams", e.Stock.Creams),
			zap.Int("cups", e.Stock.Cups),
		)
	}

	if e.Kind.Soft() {
		l.logger.Warn("Operacja nie powiodła się", fields...)
		return
	}
	l.logger.Info("Zdarzenie budynku", fields...)
}
