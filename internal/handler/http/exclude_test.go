// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	excluded := []string{
		"/",
		"/api/user/register",
		"/api/user/login",
		"/api/user/password/*",
	}

	tests := []struct {
		name          string
		path          string
		excludedPaths []string
		want          bool
	}{
		{"nil exclusion list requires auth", "/api/user/profile", nil, true},
		{"empty exclusion list requires auth", "/api/user/profile", []string{}, true},
		{"empty path requires auth", "", excluded, true},
		{"root excluded", "/", excluded, false},
		{"exact match excluded", "/api/user/login", excluded, false},
		{"trailing slash matches exclusion", "/api/user/login/", excluded, false},
		{"wildcard matches nested path", "/api/user/password/reset", excluded, false},
		{"wildcard matches prefix itself", "/api/user/password/", excluded, false},
		{"unlisted path requires auth", "/api/user/profile", excluded, true},
		{"prefix of exclusion still requires auth", "/api/user", excluded, true},
		{"wildcard does not bleed to siblings", "/api/user/passwords", excluded, true},
		{"empty exclusion entry ignored", "/api/user/profile", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuth(tt.path, tt.excludedPaths))
		})
	}
}
