package controller

import (
	"errors"
	"net/http"
	"strconv"

	"farmassist/internal/modules/weather/types"
)

func parseForecastQuery(r *http.Request) (days int, err error) {
	days = types.Horizon
	if s := r.URL.Query().Get("days"); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, errors.New("invalid 'days' (expected integer)")
		}
		if n <= 0 {
			return 0, errors.New("'days' must be > 0")
		}
		if n > types.Horizon {
			return 0, errors.New("'days' must be <= 7")
		}
		days = n
	}
	return days, nil
}
