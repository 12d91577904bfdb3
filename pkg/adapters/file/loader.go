package file

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquire/pkg/domain"
)

// Load reads a question file. JSON files are parsed as YAML, which keeps
// the key order of the questions mapping in both formats.
func Load(path string) (*Document, *domain.QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read question file: %w", err)
	}

	doc, set, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, set, nil
}

// Parse decodes a question file and validates the resulting set.
//
//	description: |
//	  # Deploy
//	questions:
//	  region: eu-west-1        # bare default, no message
//	  env:
//	    message: Target environment
//	    options: [staging, production]
//	    default: staging
//	  approve:
//	    type: confirm
//	    depends_on:
//	      env: production      # also {not: v} and {in: [a, b]}
func Parse(data []byte) (*Document, *domain.QuestionSet, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, nil, fmt.Errorf("failed to parse question file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("question file must be a mapping")
	}

	doc := &Document{}
	set := domain.NewQuestionSet()
	var questions *yaml.Node

	top := root.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "description":
			if err := value.Decode(&doc.Description); err != nil {
				return nil, nil, fmt.Errorf("line %d: description: %w", value.Line, err)
			}
		case "questions":
			questions = value
		default:
			return nil, nil, fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}

	if questions == nil {
		return nil, nil, fmt.Errorf("question file has no questions")
	}
	if questions.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("line %d: questions must be a mapping", questions.Line)
	}

	for i := 0; i+1 < len(questions.Content); i += 2 {
		key, value := questions.Content[i], questions.Content[i+1]

		def, err := decodeDefinition(value)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: field %q: %w", key.Line, key.Value, err)
		}
		set.Add(key.Value, def)
		doc.Fields = append(doc.Fields, FieldSource{Key: key.Value, Line: key.Line})
	}

	if err := set.Validate(); err != nil {
		return nil, nil, err
	}
	return doc, set, nil
}

func decodeDefinition(node *yaml.Node) (domain.Definition, error) {
	if node.Kind != yaml.MappingNode {
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return domain.Bare{Value: value}, nil
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	var meta QuestionMetadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &meta,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return meta.Question()
}

// Question converts the metadata into a domain question.
func (m QuestionMetadata) Question() (domain.Question, error) {
	q := domain.Question{
		Message:    m.Message,
		AllowEmpty: m.AllowEmpty,
		Options:    m.Options,
		ErrorText:  m.Error,
	}

	switch m.Type {
	case "", "text":
	case string(domain.KindConfirm):
		q.Kind = domain.KindConfirm
	case string(domain.KindPassword):
		q.Kind = domain.KindPassword
	case string(domain.TypeBoolean), string(domain.TypeNumber), string(domain.TypeString):
		q.Type = domain.ValueType(m.Type)
	default:
		return q, fmt.Errorf("unknown type %q", m.Type)
	}

	if m.Default != nil {
		q.Default = domain.Static(m.Default)
	}

	if m.Regex != "" {
		re, err := regexp.Compile(m.Regex)
		if err != nil {
			return q, fmt.Errorf("regex: %w", err)
		}
		q.Regex = re
	}

	if len(m.DependsOn) > 0 {
		q.DependsOn = make(map[string]domain.Condition, len(m.DependsOn))
		for field, raw := range m.DependsOn {
			cond, err := decodeCondition(raw)
			if err != nil {
				return q, fmt.Errorf("depends_on %q: %w", field, err)
			}
			q.DependsOn[field] = cond
		}
	}

	return q, nil
}

func decodeCondition(raw any) (domain.Condition, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return domain.Equals(raw), nil
	}
	if len(m) != 1 {
		return domain.Condition{}, fmt.Errorf("expected a value, {not: v} or {in: [..]}")
	}

	if v, ok := m[string(domain.OpNotEqual)]; ok {
		return domain.NotEqual(v), nil
	}
	if v, ok := m[string(domain.OpIn)]; ok {
		values, ok := v.([]any)
		if !ok {
			return domain.Condition{}, fmt.Errorf("in: expected a list")
		}
		return domain.OneOf(values...), nil
	}
	return domain.Condition{}, fmt.Errorf("expected a value, {not: v} or {in: [..]}")
}
