// Package export 将每个命令的响应写成静态文件：<name>.txt 与汇总的 site.json。
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"termfolio/internal/content"
	"termfolio/internal/logger"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"

	"golang.org/x/sync/errgroup"
)

// SiteFile 是汇总文件名。
const SiteFile = "site.json"

// IntroPage 是介绍内容对应的页面名。
const IntroPage = "intro"

// Options 配置导出。
type Options struct {
	Content content.Document
	Prompt  render.Prompt
	// Width 为纯文本换行宽度，0 表示不换行。
	Width   int
	Workers int
	Logger  *logger.LogEntry
}

// Page 是单个命令在新会话中产生的条目。
type Page struct {
	Name    string          `json:"name"`
	Entries []session.Entry `json:"entries"`
}

// Site 是 site.json 的结构。
type Site struct {
	Prompt   render.Prompt      `json:"prompt"`
	Help     []session.HelpItem `json:"help"`
	Commands []string           `json:"commands"`
	Pages    []Page             `json:"pages"`
}

// Pages 返回导出的页面名：intro 加上所有产生普通响应的命令，按字母序。
func Pages() []string {
	names := []string{IntroPage}
	for _, name := range session.CommandNames() {
		if session.Responds(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// BuildPage 在全新会话中执行命令并返回其条目；intro 返回种子条目。
func BuildPage(doc content.Document, name string) Page {
	s := session.New(session.Options{Content: doc})
	seed := s.Transcript()
	if name == IntroPage {
		return Page{Name: name, Entries: seed}
	}
	s.Submit(name)
	return Page{Name: name, Entries: s.Since(seed[len(seed)-1].ID)}
}

// RenderPage 将页面渲染为纯文本。
func RenderPage(p Page, opts Options) string {
	ro := render.Options{Width: opts.Width, Theme: render.PlainTheme(), Prompt: promptOf(opts)}
	lines := render.LinesToPlainStrings(render.RenderTranscript(p.Entries, nil, ro))
	return strings.Join(lines, "\n") + "\n"
}

// Write 将所有页面与 site.json 写入 dir，返回写入的文件路径（有序）。
func Write(ctx context.Context, dir string, opts Options) ([]string, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Named("export")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	names := Pages()
	pages := make([]Page, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := BuildPage(opts.Content, name)
			pages[i] = p
			path := filepath.Join(dir, name+".txt")
			if err := os.WriteFile(path, []byte(RenderPage(p, opts)), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.WithField("page", name).Debug("page exported")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	site := Site{
		Prompt:   promptOf(opts),
		Help:     session.Help,
		Commands: session.CommandNames(),
		Pages:    pages,
	}
	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", SiteFile, err)
	}
	sitePath := filepath.Join(dir, SiteFile)
	if err := os.WriteFile(sitePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", sitePath, err)
	}

	files := make([]string, 0, len(names)+1)
	for _, name := range names {
		files = append(files, filepath.Join(dir, name+".txt"))
	}
	files = append(files, sitePath)
	sort.Strings(files)
	log.WithField("dir", dir).WithField("files", len(files)).Info("export finished")
	return files, nil
}

func promptOf(opts Options) render.Prompt {
	if opts.Prompt == (render.Prompt{}) {
		return render.DefaultPrompt()
	}
	return opts.Prompt
}
