package base

import (
	"encoding/json"
	"errors"
	. "github.com/half-nothing/simple-fms/internal/interfaces/config"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/interfaces/log"
	"github.com/half-nothing/simple-fms/internal/utils"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

type configCodec struct {
	name      string
	marshal   func(v interface{}) ([]byte, error)
	unmarshal func(data []byte, v interface{}) error
}

var (
	jsonCodec = &configCodec{
		name:      "JSON",
		marshal:   func(v interface{}) ([]byte, error) { return json.MarshalIndent(v, "", "\t") },
		unmarshal: json.Unmarshal,
	}
	yamlCodec = &configCodec{
		name:      "YAML",
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	}
)

// codecFor 按扩展名选择配置格式, .yaml/.yml 使用YAML, 其余使用JSON
func codecFor(path string) *configCodec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec
	default:
		return jsonCodec
	}
}

func readConfig(path string, logger log.LoggerInterface) (*Config, *ValidResult) {
	config := DefaultConfig()
	codec := codecFor(path)

	// 读取配置文件
	if bytes, err := os.ReadFile(path); err != nil {
		// 如果配置文件不存在，创建默认配置
		if err := saveConfig(path, config); err != nil {
			return nil, ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, ValidFail(errors.New("the configuration file does not exist and has been created. Please try again after editing the configuration file"))
	} else if err := codec.unmarshal(bytes, config); err != nil {
		return nil, ValidFailWith(errors.New("the configuration file does not contain valid "+codec.name), err)
	} else if result := config.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return config, ValidPass()
}

func saveConfig(path string, config *Config) error {
	data, err := codecFor(path).marshal(config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, global.DefaultDirectoryPermission); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

type Manager struct {
	path   string
	config *utils.CachedValue[Config]
	logger log.LoggerInterface
}

func NewManager(logger log.LoggerInterface) *Manager {
	return NewManagerWithPath(logger, *global.ConfigFilePath)
}

func NewManagerWithPath(logger log.LoggerInterface, path string) *Manager {
	manager := &Manager{
		path:   path,
		logger: logger,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

// NewStaticManager 使用已校验的配置创建管理器, 不读取文件
func NewStaticManager(logger log.LoggerInterface, config *Config) *Manager {
	manager := NewManagerWithPath(logger, "")
	manager.config.Set(config)
	return manager
}

func (manager *Manager) getConfig() *Config {
	if config, result := readConfig(manager.path, manager.logger); result.IsFail() {
		manager.logger.Fatal(result.Error().Error())
		panic(result.OriginErr())
	} else {
		return config
	}
}

func (manager *Manager) Config() *Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	if manager.path == "" {
		return errors.New("configuration manager has no backing file")
	}
	return saveConfig(manager.path, manager.Config())
}
