/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package decorators defines the mutations applied to resource groups.

A decorator belongs to one of a closed set of families (CreateResource, AddElement, ReplaceField, RemoveElement,
Conditional); each family is applied by a function looked up in a registration table keyed by the family tag, so
further families can be added with RegisterFamily. Every decorator reports the tier it runs in; the registry applies
all CREATE decorators of a group before all MODIFY decorators, and those before all REMOVE decorators, regardless of
registration order.

Applying a decorator is idempotent: adding an element which is already present with the same value is a no-op, and
structural additions are keyed by a stable identity, so that applying them again replaces instead of duplicating.
*/
package decorators
