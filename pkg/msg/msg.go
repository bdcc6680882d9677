package msg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	messages = make(map[string]string)
	mu       sync.RWMutex
)

// init loads the catalog at MESSAGES_FILE_PATH, or configs/messages.yml when the variable is unset
func init() {
	value, ok := os.LookupEnv("MESSAGES_FILE_PATH")
	if !ok {
		value = "configs/messages.yml"
	}
	if err := Init(value); err != nil {
		if !ok && errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init loads the catalog at filepath and merges it over the current one.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	flatten("", v.AllSettings(), messages)
	return nil
}

// flatten walks the nested catalog and stores every string leaf under its dotted key.
func flatten(prefix string, node map[string]any, into map[string]string) {
	for key, value := range node {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			into[key] = v
		case map[string]any:
			flatten(key, v, into)
		default:
			log.Printf("msg: skipping non-string key %q", key)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...any) string {
	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return "Message not found: " + key
	}

	for i, arg := range args {
		message = strings.ReplaceAll(message, "{"+strconv.Itoa(i)+"}", format(arg))
	}
	return message
}

// format renders errors and Stringers by their text, scalars with fmt and anything else as JSON.
func format(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	}

	if kind := reflect.TypeOf(arg).Kind(); kind <= reflect.Complex128 || kind == reflect.String {
		return fmt.Sprint(arg)
	}
	body, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(body)
}
