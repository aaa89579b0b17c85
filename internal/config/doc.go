// Package config loads the optional wctest.yaml harness configuration:
// snapshot storage location (local directory or shared S3 bucket),
// golden update mode, and serializer default overrides. Absence of the
// file is not an error; defaults apply.
package config
