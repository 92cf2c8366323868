// Package keyvalue turns a configuration struct tagged for go-simpler.org/env
// into a sorted list of key/value pairs, and renders it as a shell script that
// sets the same variables.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV lists the `env` tagged fields of a config struct with their current
// values. Pass the struct, not a pointer to it. Untagged fields are skipped.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i).Interface().(type) {
		case string:
			val = f
		case int, int64, int32, uint64, uint32, bool, time.Duration:
			val = fmt.Sprint(f)
		case []string:
			val = strings.Join(f, ",")
		}
		m = append(m, KV{k, val})
	}
	return
}

// PrintEnv renders the key/values of a config struct as a bash script.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		val := v.Value
		if strings.ContainsAny(val, " \t\"'$") {
			val = strconv.Quote(val)
		}
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, val)
	}
}
