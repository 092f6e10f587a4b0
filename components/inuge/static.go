package inuge

import (
	"net/http"
	"os"

	"github.com/cute-angelia/nuge/syntax/ipath"
	"github.com/dustin/go-humanize"
)

const indexFile = "index.html"

func (c *Component) handleIndex(w http.ResponseWriter, r *http.Request) {
	c.serveFile(w, r, indexFile)
}

func (c *Component) handleStatic(w http.ResponseWriter, r *http.Request) {
	c.serveFile(w, r, r.URL.Path)
}

// serveFile 只返回静态根目录下的普通文件，目录和不存在的路径一律 404
func (c *Component) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	full, ok := ipath.SafeJoin(c.opts.staticDir, name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		http.NotFound(w, r)
		return
	}

	c.opts.logger.Debug().
		Str("file", full).
		Str("size", humanize.Bytes(uint64(fi.Size()))).
		Msg("static")

	// 按扩展名推断 Content-Type，失败时嗅探内容；同时处理 Range / If-Modified-Since
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}
