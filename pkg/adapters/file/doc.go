// Package file loads question sets from YAML or JSON files.
package file
