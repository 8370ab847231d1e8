// Package publish uploads a registry snapshot to S3 so a static bucket
// can act as a hosted registry endpoint.
package publish
