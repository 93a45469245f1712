// Package hcl provides the concrete HCL implementation of the suite Loader
// interface defined in the `config` package.
// It is responsible for all file parsing, HCL-to-model translation, and
// CTY-to-Go data binding.
package hcl
