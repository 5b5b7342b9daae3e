package gm

import (
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"

	"github.com/joho/godotenv"
)

func TestMain(m *testing.M) {
	// Re-executed child for TestNewWandBeforeInitializePanics: skip
	// Initialize so the init guard is reachable.
	if os.Getenv("GM_TEST_SKIP_INIT") == "1" {
		NewMagickWand()
		os.Exit(0)
	}
	// OMP_NUM_THREADS and friends can be pinned in a local .env to keep the
	// native thread pool from oversubscribing CI runners.
	_ = godotenv.Load()
	Initialize()
	os.Exit(m.Run())
}

func TestNewWandBeforeInitializePanics(t *testing.T) {
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), "GM_TEST_SKIP_INIT=1")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("NewMagickWand before Initialize did not crash the child process; output:\n%s", out)
	}
	if !strings.Contains(string(out), "Initialize must be called") {
		t.Fatalf("child process output does not carry the init precondition panic:\n%s", out)
	}
}

func TestInitializeOnce(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Initialize()
		}()
	}
	wg.Wait()

	if !HasInitialized() {
		t.Fatal("HasInitialized() = false after Initialize")
	}
	if n := initRuns.Load(); n != 1 {
		t.Fatalf("native initialization ran %d times; want 1", n)
	}
}

func TestMaxRGB(t *testing.T) {
	max := MaxRGB()
	switch max {
	case 255, 65535, 4294967295:
	default:
		t.Fatalf("MaxRGB() = %d; want a quantum-depth maximum", max)
	}
	if got := MaxRGBDouble(); got != float64(max) {
		t.Fatalf("MaxRGBDouble() = %v; want %v", got, float64(max))
	}
}
