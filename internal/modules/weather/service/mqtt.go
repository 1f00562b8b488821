package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"farmassist/internal/modules/weather/types"
	"farmassist/internal/mqtt"
)

var forecastUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "farmassist_forecast_updates_total",
	Help: "Forecast snapshots received over MQTT by result.",
}, []string{"result"})

// ForecastMessage is the MQTT payload carrying a full forecast.
type ForecastMessage struct {
	Days types.Series `json:"days"`
}

func parseForecastMessage(payload []byte) (types.Series, error) {
	var msg ForecastMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	return msg.Days, nil
}

// registerMQTTHandler sets up the weather module's MQTT message handler
func registerMQTTHandler(subscriber mqtt.MQTTSubscriber, store *Store, logger *slog.Logger) {
	subscriber.SetMessageHandler(func(topic string, payload []byte) error {
		series, err := parseForecastMessage(payload)
		if err != nil {
			forecastUpdates.WithLabelValues("rejected").Inc()
			return err
		}

		if err := store.Replace(series, SourceMQTT); err != nil {
			forecastUpdates.WithLabelValues("rejected").Inc()
			return fmt.Errorf("replace forecast: %w", err)
		}

		forecastUpdates.WithLabelValues("accepted").Inc()
		logger.Info("forecast replaced",
			"topic", topic,
			"days", len(series),
			"first_day", series[0].Date.Format(types.DateLayout),
		)
		return nil
	})
}
