// Package storage keeps player settings and high scores between runs.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName — каталог данных игры внутри пользовательского хранилища gdata.
const AppName = "horde_in_town"

// Open открывает хранилище gdata. При ошибке возвращает nil-менеджер:
// игра продолжит работу, но ничего не сохранит.
func Open(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] WARNING: persistent storage unavailable: %v (in-memory mode)", err)
		return nil
	}
	return m
}

// loadYAML читает объект object/prop в out. found == false, если записи нет.
func loadYAML(m *gdata.Manager, object, prop string, out any) (found bool, err error) {
	if m == nil || !m.ObjectPropExists(object, prop) {
		return false, nil
	}
	data, err := m.LoadObjectProp(object, prop)
	if err != nil {
		return true, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

func saveYAML(m *gdata.Manager, object, prop string, in any) error {
	if m == nil {
		return nil
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	if err := m.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}
