package gridpaint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/gridpaint/utils"
	"golang.org/x/term"
)

// MaxWorkers sets the maximum number of concurrently running workers.
const MaxWorkers = 20

// ScriptExtensions lists the extensions of the grid script files picked up in directory mode.
var ScriptExtensions = []string{".grid", ".txt"}

// Ops describes the source and the destination of an execution.
type Ops struct {
	Src, Dst, PipeName string
	// Format is the output extension used in directory mode.
	Format  string
	Workers int
	// Log receives the status lines; defaults to stderr.
	Log io.Writer
}

// result holds the relevant information about the processed script.
type result struct {
	path string
	err  error
}

// Execute runs the grid scripts found at the source and writes the rendered images to the destination.
// The source can be a script file, a directory of scripts, an URL or the pipe name (stdin).
func (p *Processor) Execute(op *Ops) error {
	if op.Log == nil {
		op.Log = os.Stderr
	}
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(
			utils.Banner("GRIDPAINT", "⇢ rendering grid...", utils.DefaultMessage),
			time.Millisecond*80, true,
		)
	}

	var (
		fs  os.FileInfo
		err error
	)

	src := op.Src
	if utils.IsValidUrl(src) {
		file, err := utils.DownloadFile(src, "text/plain")
		if err != nil {
			return fmt.Errorf("failed to load the source script: %w", err)
		}
		defer os.Remove(file.Name())
		defer file.Close()

		src = file.Name()
	}

	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source script: %w", err)
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		err = op.executeDir(p, src)
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		ext := filepath.Ext(op.Dst)
		if op.Dst != op.PipeName && !utils.Contains(SupportedExtensions, strings.ToLower(ext)) {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		err = op.process(p, src, op.Dst)
		op.printOpStatus(op.Dst, err)
	default:
		return fmt.Errorf("unsupported source: %s", op.Src)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(op.Log, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// executeDir processes the scripts found in the directory concurrently.
func (op *Ops) executeDir(p *Processor, src string) error {
	if op.Dst == "" || op.Dst == op.PipeName {
		return errors.New("a destination directory is required when the source is a directory")
	}
	if _, err := os.Stat(op.Dst); err != nil {
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
	}
	format := op.Format
	if format == "" {
		format = ".png"
	}
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	if !utils.Contains(SupportedExtensions, strings.ToLower(format)) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	// Limit the concurrently running workers to MaxWorkers.
	workers := op.Workers
	if workers <= 0 || workers > MaxWorkers {
		workers = runtime.NumCPU()
	}

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, src, ScriptExtensions)

	p.Spinner.Start()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, format, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	for res := range ch {
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", res.path, res.err)
		}
		op.printOpStatus(res.path, res.err)
	}
	p.Spinner.Stop()

	if err := <-errc; err != nil {
		return err
	}
	return firstErr
}

// consumer reads the path names from the paths channel and renders the scripts.
func (op *Ops) consumer(
	p *Processor,
	format string,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst := filepath.Join(op.Dst, name+format)
		err := op.render(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process renders a single script while showing the progress indicator.
func (op *Ops) process(p *Processor, in, out string) error {
	p.Spinner.StopMsg = utils.Banner("GRIDPAINT", "⇢ the grid has been rendered successfully ✔", utils.SuccessMessage)

	// Capture CTRL-C signal and restore the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
	}()
	go func() {
		if _, ok := <-signalChan; ok {
			p.Spinner.RestoreCursor()
			if out != op.PipeName {
				os.Remove(out)
			}
			os.Exit(1)
		}
	}()

	p.Spinner.Start()
	err := op.render(p, in, out)
	if err != nil {
		p.Spinner.StopMsg = utils.Banner("GRIDPAINT", "rendering the grid failed... ✘", utils.ErrorMessage)
	}
	p.Spinner.Stop()

	return err
}

// render runs the script from in and writes the image into out.
func (op *Ops) render(p *Processor, in, out string) (err error) {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			f.Close()
		}
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
			// Remove the generated image file in case of an error.
			if err != nil {
				os.Remove(f.Name())
			}
		}
	}()

	return p.Process(src, dst)
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			closeReader(src)
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			closeReader(src)
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}
	return src, dst, nil
}

func closeReader(r io.Reader) {
	if f, ok := r.(*os.File); ok && f != os.Stdin {
		f.Close()
	}
}

// printOpStatus displays the relevant information about the processed script.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(op.Log, "%s%s",
			utils.DecorateText("\nError rendering the grid: "+filepath.Base(fname), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(op.Log, "\nThe grid has been rendered from: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each script file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(f.Name()))) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
