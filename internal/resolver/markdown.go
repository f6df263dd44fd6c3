// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package resolver

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer is the shared sanitization policy for rendered body content.
// UGCPolicy allows the safe tag set for user-generated content while
// stripping scripts and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderBody converts markdown body content to sanitized HTML. On a
// conversion failure the raw text is returned escaped through the sanitizer
// so a bad body never breaks a page.
func RenderBody(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return htmlSanitizer.Sanitize(md)
	}
	return htmlSanitizer.Sanitize(buf.String())
}
