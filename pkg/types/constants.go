/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

// Placeholder for facts which could not be resolved (e.g. a missing VCS remote).
const Unknown = "unknown"

const (
	LabelKeyName    = "app.kubernetes.io/name"
	LabelKeyVersion = "app.kubernetes.io/version"
	LabelKeyPartOf  = "app.kubernetes.io/part-of"
	LabelKeyRuntime = "app.openshift.io/runtime"
)

const (
	AnnotationKeyVcsUrl          = "app.decoration.cs.sap.com/vcs-url"
	AnnotationKeyCommitId        = "app.decoration.cs.sap.com/commit-id"
	AnnotationKeyOpenshiftVcsUri = "app.openshift.io/vcs-uri"
	AnnotationKeyOpenshiftVcsRef = "app.openshift.io/vcs-ref"
)

const DefaultRemote = "origin"
