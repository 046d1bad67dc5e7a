// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the HTML pages of the movie browser.
//
// Templates and the stylesheet are embedded into the binary. Every page is
// parsed together with templates/layout.html, which draws the header, the
// genre navigation (only for a logged-in user) and the search form. Pages
// define a "content" block; the layout executes it.
package view
