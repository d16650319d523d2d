package analysis

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"resume-analyzer/internal/inference"
)

// The schema descriptor and the Result type declare the same contract
// independently; this keeps them from drifting apart.
func TestResultSchemaMatchesResultType(t *testing.T) {
	if ResultSchema.Type != inference.TypeObject {
		t.Fatalf("top-level schema type = %q", ResultSchema.Type)
	}

	tags := jsonTags(reflect.TypeOf(Result{}))
	props := make([]string, 0, len(ResultSchema.Properties))
	for name := range ResultSchema.Properties {
		props = append(props, name)
	}
	sort.Strings(tags)
	sort.Strings(props)
	if !reflect.DeepEqual(tags, props) {
		t.Errorf("schema properties %v do not match Result json tags %v", props, tags)
	}

	required := append([]string(nil), ResultSchema.Required...)
	sort.Strings(required)
	if !reflect.DeepEqual(tags, required) {
		t.Errorf("schema required keys %v do not match Result json tags %v", required, tags)
	}
}

func TestResultSchemaImprovementEntries(t *testing.T) {
	improvements := ResultSchema.Properties["improvements"]
	if improvements == nil || improvements.Items == nil {
		t.Fatal("improvements must be an array of objects")
	}

	tags := jsonTags(reflect.TypeOf(Improvement{}))
	sort.Strings(tags)

	entry := improvements.Items
	props := make([]string, 0, len(entry.Properties))
	for name := range entry.Properties {
		props = append(props, name)
	}
	sort.Strings(props)
	if !reflect.DeepEqual(tags, props) {
		t.Errorf("improvement entry properties %v do not match Improvement json tags %v", props, tags)
	}
}

func jsonTags(typ reflect.Type) []string {
	var tags []string
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("json")
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			tags = append(tags, name)
		}
	}
	return tags
}
