// Package auth provides access control for publishing build summaries to
// the net-cache.
package auth

// Permission defines an action that can be controlled
type Permission string

// PermPublish gates writes of the post-build graph summary to the net-cache
// (pkg/netcache). It is the only permission this project needs: a build can
// always run locally, but mirroring its result for a placer farm to read
// requires either superuser/publisher group membership or the shared secret.
const PermPublish Permission = "publish"
