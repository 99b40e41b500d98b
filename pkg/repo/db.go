package repo

import (
	"fmt"

	hcmemdb "github.com/hashicorp/go-memdb"
)

// PK is the alias for "id". Index "id" is required by all tables.
const PK = "id"

func GetSchema() (*hcmemdb.DBSchema, error) {
	return mergeTableSchemas(
		ProjectSchema(),
		ArtifactSchema(),
	)
}

func mergeTableSchemas(schemas ...map[string]*hcmemdb.TableSchema) (*hcmemdb.DBSchema, error) {
	tables := map[string]*hcmemdb.TableSchema{}
	for _, schema := range schemas {
		for name, table := range schema {
			if _, ok := tables[name]; ok {
				return nil, fmt.Errorf("table %q is defined twice", name)
			}
			tables[name] = table
		}
	}

	merged := &hcmemdb.DBSchema{Tables: tables}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
