// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"fmt"
	"html/template"
	"strings"
)

// imageBaseURL is the TMDB image CDN. Paths from the API start with "/".
const imageBaseURL = "https://image.tmdb.org/t/p/"

var funcs = template.FuncMap{
	"poster":  posterURL,
	"profile": profileURL,
	"year":    releaseYear,
	"rating":  rating,
	"runtime": formatRuntime,
}

func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + "w500" + path
}

func profileURL(path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + "w185" + path
}

// releaseYear takes the year of a "YYYY-MM-DD" date.
func releaseYear(date string) string {
	year, _, _ := strings.Cut(date, "-")
	return year
}

func rating(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
