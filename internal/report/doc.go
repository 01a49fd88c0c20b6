// Package report computes and prints the four descriptive summaries of a
// filtered trip table: times of travel, station popularity, trip duration
// and user demographics. Each summary is also returned as a Section so the
// session can export it.
package report
