//go:build viewkitdebug

package viewkit

const debug = true
