/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package registry holds the named resource groups of a generation run, together with the decorators registered
against them. Decorators are applied in tiers (create, then modify, then remove); within a tier, registration
order is preserved. A registry is applied exactly once.
*/
package registry
