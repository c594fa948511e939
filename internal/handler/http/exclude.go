// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "strings"

// RequireAuth reports whether the given request path requires an
// authenticated session.
//
// excludedPaths lists paths that are reachable without a session. Matching
// is slash-insensitive: both the request path and each exclusion entry are
// compared with a trailing slash appended, so "/api/user/login" and
// "/api/user/login/" are the same path. An entry ending in "*" is a prefix
// pattern: "/api/user/password/*" excludes every path under
// "/api/user/password/".
//
// With a nil or empty exclusion list every path requires authentication.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	normalized := withTrailingSlash(path)
	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}

		if strings.HasSuffix(excluded, "*") {
			if strings.HasPrefix(normalized, excluded[:len(excluded)-1]) {
				return false
			}
			continue
		}

		if normalized == withTrailingSlash(excluded) {
			return false
		}
	}

	return true
}

func withTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
