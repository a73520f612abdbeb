// Command mock-weatherstack serves canned /current responses in the
// weatherstack format for local runs against WEATHERSTACK_BASE_URLS.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type location struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Latitude  string `json:"lat"`
	Longitude string `json:"lon"`
	Timezone  string `json:"timezone_id"`
}

type current struct {
	ObservationTime string  `json:"observation_time"`
	Temperature     float64 `json:"temperature"`
	WindSpeed       float64 `json:"wind_speed"`
	WindDir         string  `json:"wind_dir"`
	Pressure        float64 `json:"pressure"`
	Precip          float64 `json:"precip"`
	Humidity        float64 `json:"humidity"`
	Cloudcover      float64 `json:"cloudcover"`
	UVIndex         float64 `json:"uv_index"`
	Visibility      float64 `json:"visibility"`
	IsDay           string  `json:"is_day"`
}

var weatherData = map[string]struct {
	location location
	current  current
}{
	"jakarta": {
		location: location{Name: "Jakarta", Country: "Indonesia", Region: "Jakarta Raya", Latitude: "-6.215", Longitude: "106.845", Timezone: "Asia/Jakarta"},
		current:  current{ObservationTime: "03:15 AM", Temperature: 29, WindSpeed: 7, WindDir: "SW", Pressure: 1010, Precip: 0.1, Humidity: 70, Cloudcover: 75, UVIndex: 6, Visibility: 10, IsDay: "yes"},
	},
	"bandung": {
		location: location{Name: "Bandung", Country: "Indonesia", Region: "West Java", Latitude: "-6.903", Longitude: "107.619", Timezone: "Asia/Jakarta"},
		current:  current{ObservationTime: "03:15 AM", Temperature: 23, WindSpeed: 4, WindDir: "W", Pressure: 1012, Humidity: 83, Cloudcover: 50, UVIndex: 5, Visibility: 10, IsDay: "yes"},
	},
}

func providerError(code int, kind, info string) gin.H {
	return gin.H{
		"success": false,
		"error":   gin.H{"code": code, "type": kind, "info": info},
	}
}

func newRouter() *gin.Engine {
	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/current", func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("query"))
		units := c.DefaultQuery("units", "m")

		// weatherstack reports failures with HTTP 200 and success=false
		if c.Query("access_key") == "" {
			c.JSON(http.StatusOK, providerError(101, "missing_access_key", "You have not supplied an API Access Key."))
			return
		}
		if query == "" {
			c.JSON(http.StatusOK, providerError(601, "missing_query", "Please specify a valid location identifier using the query parameter."))
			return
		}

		switch strings.ToLower(query) {
		case "servererror":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		case "noshape":
			c.JSON(http.StatusOK, gin.H{"request": gin.H{"query": query}})
			return
		}

		data, exists := weatherData[strings.ToLower(query)]
		if !exists {
			c.JSON(http.StatusOK, providerError(615, "request_failed", "Your API request failed. Please try again or contact support."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request":  gin.H{"type": "City", "query": data.location.Name + ", " + data.location.Country, "language": "en", "unit": units},
			"location": data.location,
			"current":  data.current,
		})
	})

	return r
}

func main() {
	gin.SetMode(gin.ReleaseMode)

	addr := ":8081"
	if port := os.Getenv("MOCK_WEATHERSTACK_PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock weatherstack server starting", "addr", addr)
	if err := newRouter().Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
