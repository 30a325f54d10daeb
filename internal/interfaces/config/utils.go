// Package config
package config

import (
	"errors"
	"github.com/half-nothing/simple-fms/internal/interfaces/global"
	"github.com/half-nothing/simple-fms/internal/utils"
	"strings"
	"time"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type Version struct {
	major   int
	minor   int
	patch   int
	version string
}

func newVersion(version string) (*Version, error) {
	versions := strings.Split(version, ".")
	if len(versions) < 3 {
		return nil, errors.New("invalid version String")
	}
	return &Version{
		major:   utils.StrToInt(versions[0], 0),
		minor:   utils.StrToInt(versions[1], 0),
		patch:   utils.StrToInt(versions[2], 0),
		version: version,
	}, nil
}

func (v *Version) checkVersion(version *Version) checkVersionResult {
	if v.major != version.major {
		return MajorUnmatch
	}
	if v.minor != version.minor {
		return MinorUnmatch
	}
	if v.patch != version.patch {
		return PatchUnmatch
	}
	return AllMatch
}

func (v *Version) String() string {
	return v.version
}

// parseDuration 解析配置中的时间字符串, field 用于错误提示
func parseDuration(field, value string) (time.Duration, *ValidResult) {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, ValidFailWith(errors.New("invalid json field "+field), err)
	}
	return duration, ValidPass()
}

// loadLocation 解析时区名称, 空字符串视为本地时区
func loadLocation(field, name string) (*time.Location, *ValidResult) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, ValidPass()
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, ValidFailWith(errors.New("invalid json field "+field), err)
	}
	return location, ValidPass()
}
