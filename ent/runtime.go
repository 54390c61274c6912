// Code generated by ent, DO NOT EDIT.

package ent

// The schema-stitching logic is generated in github.com/ghostworks/ghostd/ent/runtime/runtime.go
