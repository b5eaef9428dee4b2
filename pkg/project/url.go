/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"net/url"
	"regexp"
	"strings"
)

// matches scp-like git urls, such as git@github.com:org/repo.git
var scpUrlPattern = regexp.MustCompile(`^(?:[A-Za-z0-9_.-]+@)?([A-Za-z0-9_.-]+):([^/][^:]*)$`)

func sanitizeUrl(rawUrl string, httpsPreferred bool) string {
	if m := scpUrlPattern.FindStringSubmatch(rawUrl); m != nil && !strings.Contains(rawUrl, "://") {
		if httpsPreferred {
			return "https://" + m[1] + "/" + m[2]
		}
		return rawUrl
	}

	u, err := url.Parse(rawUrl)
	if err != nil {
		return rawUrl
	}
	switch u.Scheme {
	case "ssh", "git+ssh":
		if httpsPreferred {
			return "https://" + u.Hostname() + "/" + strings.TrimPrefix(u.Path, "/")
		}
		return rawUrl
	case "http", "https":
		// never leak credentials into manifests
		u.User = nil
		return u.String()
	default:
		return rawUrl
	}
}
