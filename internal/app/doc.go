// Package app contains the session driver. It owns the configuration, the
// logger and the city registry, and runs interactive passes (collect
// filters, load, page raw rows, print the four reports) until the user
// stops, independently of any particular entrypoint.
package app
