package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader handles loading and caching of spritesheet images.
type ImageLoader struct {
	mu      sync.Mutex
	cache   map[string]*ebiten.Image
	results chan loadResult
}

type loadResult struct {
	handle *LoadHandle
	path   string
	img    image.Image
	err    error
}

// LoadHandle represents an in-flight asynchronous image load. Cancelling it
// guarantees the apply callback never runs, so a component torn down before
// its sheet resolves cannot be mutated by a stale load.
type LoadHandle struct {
	cancelled atomic.Bool
	apply     func(*ebiten.Image)
}

func (h *LoadHandle) Cancel() {
	h.cancelled.Store(true)
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:   make(map[string]*ebiten.Image),
		results: make(chan loadResult, 32),
	}
}

// LoadImage synchronously loads and caches an image from disk. A missing or
// broken file is logged and reported as nil; callers render nothing until a
// sheet resolves.
func (l *ImageLoader) LoadImage(path string) *ebiten.Image {
	l.mu.Lock()
	if img, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return img
	}
	l.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[assets] read %s: %v", path, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		log.Printf("[assets] decode %s: %v", path, err)
		return nil
	}

	l.mu.Lock()
	l.cache[path] = img
	l.mu.Unlock()
	return img
}

// LoadAsync decodes an image off the tick loop and hands it to apply on a
// later Flush. The returned handle cancels delivery, not the decode.
func (l *ImageLoader) LoadAsync(path string, apply func(*ebiten.Image)) *LoadHandle {
	handle := &LoadHandle{apply: apply}

	l.mu.Lock()
	_, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		// Already resolved; deliver on the next Flush like any other load.
		l.results <- loadResult{handle: handle, path: path}
		return handle
	}

	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			l.results <- loadResult{handle: handle, path: path, err: err}
			return
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		l.results <- loadResult{handle: handle, path: path, img: img, err: err}
	}()
	return handle
}

// Flush applies completed loads. It must be called from the tick loop so
// component mutation stays single-writer.
func (l *ImageLoader) Flush() {
	for {
		select {
		case res := <-l.results:
			if res.handle.cancelled.Load() {
				continue
			}
			if res.err != nil {
				log.Printf("[assets] load %s: %v", res.path, res.err)
				continue
			}
			l.mu.Lock()
			img, ok := l.cache[res.path]
			if !ok {
				img = ebiten.NewImageFromImage(res.img)
				l.cache[res.path] = img
			}
			l.mu.Unlock()
			if res.handle.apply != nil {
				res.handle.apply(img)
			}
		default:
			return
		}
	}
}

var imageLoader = NewImageLoader()

// GetImage loads a spritesheet through the shared loader.
func GetImage(path string) *ebiten.Image {
	return imageLoader.LoadImage(path)
}

// GetImageAsync schedules a load on the shared loader.
func GetImageAsync(path string, apply func(*ebiten.Image)) *LoadHandle {
	return imageLoader.LoadAsync(path, apply)
}

// FlushLoads applies pending async loads; call once per tick.
func FlushLoads() {
	imageLoader.Flush()
}

// Preload warms the cache for a set of paths, reporting the first failure.
func Preload(paths ...string) error {
	for _, p := range paths {
		if img := imageLoader.LoadImage(p); img == nil {
			return fmt.Errorf("preload %s failed", p)
		}
	}
	return nil
}
