package generator

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accessorsProgram = `#include "EmbeddedResources.h"
#include <iostream>
#include <stdexcept>

using namespace Orthanc::EmbeddedResources;

#define CHECK(cond) do { if (!(cond)) { std::cout << "FAIL line " << __LINE__ << std::endl; return 1; } } while (0)

int main()
{
  std::string s;

  CHECK(GetFileResourceSize(WELCOME) == 4);
  GetFileResource(s, WELCOME);
  CHECK(s == "abcd");

  CHECK(GetFileResourceSize(EMPTY) == 0);
  GetFileResource(s, EMPTY);
  CHECK(s.empty());

  CHECK(GetDirectoryResourceSize(ASSETS, "img.png") == 2);
  const unsigned char* img = static_cast<const unsigned char*>(GetDirectoryResourceBuffer(ASSETS, "img.png"));
  CHECK(img[0] == 0xff && img[1] == 0x00);
  GetDirectoryResource(s, ASSETS, "b.txt");
  CHECK(s == "b");

  std::list<std::string> paths;
  ListResources(paths, ASSETS);
  CHECK(paths.size() == 3);
  CHECK(paths.front() == "a.txt");
  CHECK(paths.back() == "img.png");

  bool thrown = false;
  try { GetFileResourceSize(static_cast<FileResourceId>(99)); } catch (std::runtime_error&) { thrown = true; }
  CHECK(thrown);

  thrown = false;
  try { ListResources(paths, static_cast<DirectoryResourceId>(99)); } catch (std::runtime_error&) { thrown = true; }
  CHECK(thrown);

  thrown = false;
  try { GetDirectoryResource(s, ASSETS, "missing.txt"); } catch (std::runtime_error& e) { thrown = (std::string(e.what()) == "Unknown path in a directory resource"); }
  CHECK(thrown);

  std::cout << "OK" << std::endl;
  return 0;
}
`

func findCompiler() string {
	for _, name := range []string{"g++", "c++", "clang++"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

func TestGeneratedCodeCompilesAndRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping C++ build in short mode")
	}
	cxx := findCompiler()
	if cxx == "" {
		t.Skip("no C++ compiler on PATH")
	}

	fsys := siteFs(t)
	require.NoError(t, afero.WriteFile(fsys, "site/empty.txt", nil, 0644))
	require.NoError(t, afero.WriteFile(fsys, "site/assets/b.txt", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "site/assets/a.txt", []byte("a"), 0644))
	cat := buildCatalog(t, fsys,
		"WELCOME", "site/index.html",
		"ASSETS", "site/assets",
		"EMPTY", "site/empty.txt",
	)

	dir := t.TempDir()
	target := filepath.Join(dir, "EmbeddedResources")
	require.NoError(t, Generate(context.Background(), fsys, cat, target, testOptions()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte(accessorsProgram), 0644))

	exe := filepath.Join(dir, "accessors")
	build := exec.Command(cxx, "-std=c++11", "-O0", "-o", exe, "main.cpp", "EmbeddedResources.cpp")
	build.Dir = dir
	out, err := build.CombinedOutput()
	require.NoError(t, err, "compile failed:\n%s", out)

	out, err = exec.Command(exe).CombinedOutput()
	require.NoError(t, err, "run failed:\n%s", out)
	assert.Equal(t, "OK", strings.TrimSpace(string(out)))
}
