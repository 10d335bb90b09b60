package store

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// gdata 中存档所在的对象名，键作为属性名
const gdataSaveObject = "save"

// DefaultAppName gdata 应用名，决定存储目录（如 ~/.local/share/duckclicker）
const DefaultAppName = "duckclicker"

// GdataStore 基于 quasilyte/gdata 的跨平台键值存储
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdata 打开 gdata 存储
//
// 参数：
//   - appName: 应用名，为空时使用 DefaultAppName
//
// 返回：
//   - *GdataStore: 存储实例
//   - error: 如果 gdata 初始化失败返回错误
func OpenGdata(appName string) (*GdataStore, error) {
	if appName == "" {
		appName = DefaultAppName
	}

	// Android 上需要预先创建存储目录
	if err := ensureStorageDir(); err != nil {
		log.Printf("[Store] Warning: failed to prepare storage dir: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}

	log.Printf("[Store] gdata storage opened (app: %s)", appName)
	return &GdataStore{manager: manager}, nil
}

// Manager 返回底层 gdata 管理器
func (s *GdataStore) Manager() *gdata.Manager {
	return s.manager
}

// ManagerFor 返回保存设置用的 gdata 管理器
//
// st 本身是 GdataStore 时复用同一个管理器；其它后端（sqlite、memory）
// 按 appName 单独打开，设置仍然写在平台的应用数据目录中。
func ManagerFor(st Store, appName string) (*gdata.Manager, error) {
	if gs, ok := st.(*GdataStore); ok {
		return gs.Manager(), nil
	}
	gs, err := OpenGdata(appName)
	if err != nil {
		return nil, err
	}
	return gs.Manager(), nil
}

func (s *GdataStore) Get(key string) ([]byte, bool, error) {
	if !s.manager.ObjectPropExists(gdataSaveObject, key) {
		return nil, false, nil
	}
	data, err := s.manager.LoadObjectProp(gdataSaveObject, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *GdataStore) Set(key string, data []byte) error {
	if err := s.manager.SaveObjectProp(gdataSaveObject, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *GdataStore) Remove(key string) error {
	if !s.manager.ObjectPropExists(gdataSaveObject, key) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(gdataSaveObject, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close gdata 没有需要释放的资源
func (s *GdataStore) Close() error {
	return nil
}
