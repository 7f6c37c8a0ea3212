// Package textconv converts textual values, as found in configuration files,
// properties or command line arguments, into strongly typed runtime values.
// It supports scalars, registered enumerations, types constructible from text,
// and parameterized containers (lists, sets, sorted variants and key/value
// mappings) with recursively converted elements.
package textconv
