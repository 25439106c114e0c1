package models

import (
    "bytes"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/goccy/go-json"
    "github.com/goccy/go-yaml"
)

// ExportSpec is the parameter dump of a model trained elsewhere, as written
// by the export script next to the training notebook.
type ExportSpec struct {
    Kind      string      `yaml:"kind" json:"kind"`
    Features  []string    `yaml:"features" json:"features"`
    Coef      []float64   `yaml:"coef" json:"coef"`
    Intercept float64     `yaml:"intercept" json:"intercept"`
    Root      *NodeSpec   `yaml:"root" json:"root"`
    Trees     []*NodeSpec `yaml:"trees" json:"trees"`

    Init         float64     `yaml:"init" json:"init"`
    LearningRate float64     `yaml:"learning_rate" json:"learning_rate"`
    Stumps       []StumpSpec `yaml:"stumps" json:"stumps"`
}

type StumpSpec struct {
    Feature   int     `yaml:"feature" json:"feature"`
    Threshold float64 `yaml:"threshold" json:"threshold"`
    Left      float64 `yaml:"left" json:"left"`
    Right     float64 `yaml:"right" json:"right"`
}

// NodeSpec is one tree node. A node without children is a leaf and must
// carry Proba.
type NodeSpec struct {
    Feature   int       `yaml:"feature" json:"feature"`
    Threshold float64   `yaml:"threshold" json:"threshold"`
    Left      *NodeSpec `yaml:"left" json:"left"`
    Right     *NodeSpec `yaml:"right" json:"right"`
    Proba     *float64  `yaml:"proba" json:"proba"`
}

// ParseExport decodes raw as YAML or JSON. format is a file extension
// ("yaml", "yml", "json", with or without the dot).
func ParseExport(raw []byte, format string) (*ExportSpec, error) {
    var spec ExportSpec
    switch strings.TrimPrefix(strings.ToLower(format), ".") {
    case "yaml", "yml":
        if err := yaml.UnmarshalWithOptions(raw, &spec, yaml.Strict()); err != nil {
            return nil, fmt.Errorf("parse yaml export: %w", err)
        }
    case "json":
        dec := json.NewDecoder(bytes.NewReader(raw))
        dec.DisallowUnknownFields()
        if err := dec.Decode(&spec); err != nil {
            return nil, fmt.Errorf("parse json export: %w", err)
        }
    default:
        return nil, fmt.Errorf("unsupported export format %q", format)
    }
    return &spec, nil
}

func ReadExportFile(path string) (*ExportSpec, error) {
    raw, err := os.ReadFile(path)
    if err != nil { return nil, err }
    return ParseExport(raw, filepath.Ext(path))
}

// Artifact converts the export into a checked artifact. defaultFeatures is
// used when the export does not name its columns.
func (s *ExportSpec) Artifact(defaultFeatures []string) (*Artifact, error) {
    a := &Artifact{Kind: s.Kind, Features: s.Features}
    if len(a.Features) == 0 { a.Features = append([]string(nil), defaultFeatures...) }
    switch s.Kind {
    case KindLogistic:
        a.Logistic = &LogisticRegression{Coef: s.Coef, Intercept: s.Intercept}
    case KindSVM:
        a.SVM = &LinearSVM{Coef: s.Coef, Intercept: s.Intercept}
    case KindTree:
        root, err := s.Root.node()
        if err != nil { return nil, err }
        a.Tree = &DecisionTree{Root: root}
    case KindForest:
        rf := &RandomForest{Trees: make([]*DecisionTree, 0, len(s.Trees))}
        for k, t := range s.Trees {
            root, err := t.node()
            if err != nil { return nil, fmt.Errorf("tree %d: %w", k, err) }
            rf.Trees = append(rf.Trees, &DecisionTree{Root: root})
        }
        a.Forest = rf
    case KindBoosting:
        gb := &GradientBoosting{Init: s.Init, LearningRate: s.LearningRate, Stumps: make([]Stump, len(s.Stumps))}
        for k, st := range s.Stumps {
            gb.Stumps[k] = Stump{Feature: st.Feature, Threshold: st.Threshold, LeftVal: st.Left, RightVal: st.Right}
        }
        a.Boosting = gb
    default:
        return nil, fmt.Errorf("unknown model kind %q", s.Kind)
    }
    if _, err := a.Classifier(); err != nil { return nil, err }
    return a, nil
}

func (n *NodeSpec) node() (*DTNode, error) {
    if n == nil { return nil, fmt.Errorf("missing tree node") }
    if n.Left == nil && n.Right == nil {
        if n.Proba == nil { return nil, fmt.Errorf("leaf without proba") }
        return &DTNode{IsLeaf: true, ProbaLeaf: *n.Proba}, nil
    }
    left, err := n.Left.node()
    if err != nil { return nil, err }
    right, err := n.Right.node()
    if err != nil { return nil, err }
    return &DTNode{Feature: n.Feature, Threshold: n.Threshold, Left: left, Right: right}, nil
}
