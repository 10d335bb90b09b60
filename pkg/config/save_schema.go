package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/decker502/duckclicker/pkg/embedded"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SaveSchemaPath 存档 JSON Schema 的资源路径
const SaveSchemaPath = "data/save.schema.json"

// saveSchemaURL 编译时使用的资源标识，资源已预先加入编译器，不会发起网络请求
const saveSchemaURL = "https://github.com/decker502/duckclicker/data/save.schema.json"

// LoadSaveSchema 读取并编译存档 Schema
//
// 返回：
//
//	*jsonschema.Schema - 编译后的 Schema
//	error - 读取或编译失败
func LoadSaveSchema() (*jsonschema.Schema, error) {
	raw, err := embedded.ReadFile(SaveSchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read save schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(saveSchemaURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add save schema: %w", err)
	}
	schema, err := c.Compile(saveSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile save schema: %w", err)
	}
	return schema, nil
}

// ValidateSave 检查存档 JSON 是否符合 Schema
//
// 注意：游戏读取存档时是宽松的（economy.LoadState），不符合 Schema 的存档
// 仍然可以加载，这里只用于工具检查写入方的输出。
func ValidateSave(schema *jsonschema.Schema, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("save is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("save does not match schema: %w", err)
	}
	return nil
}
