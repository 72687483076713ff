package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"lautenbacher.net/blinkin/pattern"
)

// ConfigHandler routes API requests for /api/config to the appropriate handler
// based on the HTTP method. It also passes the config file path to the handlers.
func ConfigHandler(cfile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getConfigHandler(w, r, cfile)
		case http.MethodPost:
			setConfigHandler(w, r, cfile)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// getConfigHandler reads the current config file, extracts the runtime-safe
// configuration, and returns it as JSON.
func getConfigHandler(w http.ResponseWriter, r *http.Request, cfile string) {
	slog.Info("Handling GET /api/config request")
	// Read on every request so edits made outside the API are visible.
	fullConfig, err := ReadConfig(cfile)
	if err != nil {
		slog.Error("Failed to read config file for API", "error", err)
		http.Error(w, "Failed to read configuration", http.StatusInternalServerError)
		return
	}

	runtimeConfig := RuntimeConfig{
		Output:  fullConfig.Output,
		Presets: fullConfig.Presets,
	}
	writeJSON(w, runtimeConfig)
}

// setConfigHandler receives a JSON payload with runtime configuration, merges it
// with the full configuration on disk, validates it, and writes it back.
func setConfigHandler(w http.ResponseWriter, r *http.Request, cfile string) {
	slog.Info("Handling POST /api/config request")
	defer r.Body.Close()

	var newRuntimeConfig RuntimeConfig
	if err := json.NewDecoder(r.Body).Decode(&newRuntimeConfig); err != nil {
		slog.Error("Failed to decode incoming JSON", "error", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Logging settings are kept from the file on disk.
	fullConfig, err := ReadConfig(cfile)
	if err != nil {
		slog.Error("Failed to read existing config for update", "error", err)
		http.Error(w, "Failed to read configuration", http.StatusInternalServerError)
		return
	}

	fullConfig.Output = newRuntimeConfig.Output
	fullConfig.Presets = newRuntimeConfig.Presets
	if fullConfig.Presets == nil {
		fullConfig.Presets = map[string]pattern.Pattern{}
	}

	if err := fullConfig.Validate(); err != nil {
		slog.Error("Validation failed for new config", "error", err)
		http.Error(w, fmt.Sprintf("Invalid configuration: %v", err), http.StatusBadRequest)
		return
	}

	// Writing the file triggers a reload in any running Watch.
	if err := WriteConfig(cfile, fullConfig); err != nil {
		slog.Error("Failed to write updated config file", "error", err)
		http.Error(w, "Failed to save configuration", http.StatusInternalServerError)
		return
	}

	slog.Info("Successfully updated config file", "presets", len(fullConfig.Presets))
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Configuration updated successfully.")
}

// PatternInfo is one row of the pattern table as served by the API.
type PatternInfo struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Code            uint8   `json:"code"`
	Percentage      float32 `json:"percentage"`
	AbsPercentage   float32 `json:"absPercentage"`
	PulseWidthMicro int64   `json:"pulseWidthMicros"`
	Duty            float64 `json:"duty"`
}

// NewPatternInfo collects every conversion of p for the given output.
func NewPatternInfo(p pattern.Pattern, out OutputConfig) (PatternInfo, error) {
	duty, err := out.Duty(p)
	if err != nil {
		return PatternInfo{}, err
	}
	return PatternInfo{
		Name:            p.String(),
		Category:        p.Category().String(),
		Code:            p.Code(),
		Percentage:      p.AsPercentage(),
		AbsPercentage:   p.AsAbsPercentage(),
		PulseWidthMicro: p.AsPulseWidth().Microseconds(),
		Duty:            duty,
	}, nil
}

// PatternsHandler serves GET /api/patterns: the whole table with duty
// values for the configured output. The query parameters max and type
// override the configured output.
func PatternsHandler(cfile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		out := Default().Output
		if conf, err := ReadConfig(cfile); err == nil {
			out = conf.Output
		} else {
			slog.Debug("Using default output for pattern table", "error", err)
		}

		query := r.URL.Query()
		if v := query.Get("max"); v != "" {
			maxDuty, err := strconv.ParseFloat(v, 64)
			if err != nil {
				http.Error(w, fmt.Sprintf("Invalid max: %v", err), http.StatusBadRequest)
				return
			}
			out.MaxDuty = maxDuty
		}
		if v := query.Get("type"); v != "" {
			out.Type = DutyType(v)
		}
		if err := out.Validate(); err != nil {
			http.Error(w, fmt.Sprintf("Invalid output: %v", err), http.StatusBadRequest)
			return
		}

		rows := make([]PatternInfo, 0, len(pattern.All()))
		for _, p := range pattern.All() {
			info, err := NewPatternInfo(p, out)
			if err != nil {
				slog.Error("Failed to convert pattern", "pattern", p, "error", err)
				http.Error(w, "Failed to convert pattern table", http.StatusInternalServerError)
				return
			}
			rows = append(rows, info)
		}
		writeJSON(w, rows)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, "Failed to serialize response", http.StatusInternalServerError)
	}
}
