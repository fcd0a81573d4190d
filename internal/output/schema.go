// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// schemaTag represents a discovered struct field tag used when emitting schema
// information (--schema flag).
type schemaTag struct {
	Name    string
	Options string
}

// NewTag parses a json struct tag into a schemaTag. The holder h, when
// non-empty, is prepended to the field name so nested attributes read as
// dotted paths.
func NewTag(h string, s string) schemaTag {
	tag := schemaTag{}

	parts := strings.Split(s, ",")
	if parts[0] == "" || parts[0] == "-" {
		return tag
	}

	name := parts[0]
	if h != "" {
		name = fmt.Sprintf("%s.%s", h, name)
	}
	tag.Name = name

	if len(parts) > 1 {
		tag.Options = strings.Join(parts[1:], ",")
	}

	return tag
}

// maxSchemaDepth limits the depth of schema walking to prevent infinite
// recursion.
const maxSchemaDepth = 1

// DumpSchema writes a sorted list of attribute tags for the provided type
// to the provided writer. If w is nil, os.Stdout is used.
func DumpSchema(prefix string, typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Record attributes that are directly available to the --attrs flag.
For the complete record document use --output=raw.`)
	fmt.Fprintln(w, "")

	tags := dumpSchemaWalker(prefix, typ, 0)
	if len(tags) == 0 {
		log.Debugf("No tags found for type: %s", typ.Name())
		return
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, tag.Name)
	}

}

// dumpSchemaWalker recursively walks a struct type discovering json tags.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		log.Debugf("field: %s, type: %s in %s", field.Name, field.Type, field.PkgPath)

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}

		tag := NewTag(holder, tagValue)
		if tag.Name == "" {
			continue
		}

		tags = append(tags, tag)

		if depth < maxSchemaDepth {

			switch field.Type.Kind() {
			case reflect.Struct:
				tags = append(tags, dumpSchemaWalker(tag.Name, field.Type, depth+1)...)
			case reflect.Ptr:
				if field.Type.Elem().Kind() == reflect.Struct {
					tags = append(tags, dumpSchemaWalker(tag.Name, field.Type.Elem(), depth+1)...)
				}
			default:
				if strings.Contains(field.Type.String(), ".") {
					continue
				}
				log.Debugf("Presumed primitive field type: %s for %v", field.Type.Kind(), tag)
			}
		}
	}

	return tags
}
