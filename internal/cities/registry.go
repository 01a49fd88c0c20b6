// Package cities holds the registry of supported cities and the trip log
// file each one is backed by.
package cities

import "path/filepath"

// Supported cities. The set is closed: overrides may repoint a city at a
// different file but never add or remove one.
const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var names = [...]string{Chicago, NewYorkCity, Washington}

var defaultFiles = map[string]string{
	Chicago:     "chicago.csv",
	NewYorkCity: "new_york_city.csv",
	Washington:  "washington.csv",
}

// Registry maps each supported city to the path of its trip log.
type Registry struct {
	dataDir string
	files   map[string]string
}

// Default returns the built-in registry with every file placed directly in
// dataDir.
func Default(dataDir string) *Registry {
	files := make(map[string]string, len(defaultFiles))
	for city, file := range defaultFiles {
		files[city] = filepath.Join(dataDir, file)
	}
	return &Registry{dataDir: dataDir, files: files}
}

// Names returns the supported city names in display order.
func (r *Registry) Names() []string {
	return append([]string(nil), names[:]...)
}

// DataDir is the directory missing files are searched under.
func (r *Registry) DataDir() string {
	return r.dataDir
}

// File returns the trip log path for city. The lookup is exact: callers
// normalise case at the input boundary.
func (r *Registry) File(city string) (string, bool) {
	f, ok := r.files[city]
	return f, ok
}
