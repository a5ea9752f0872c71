package emit

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sarchlab/uasm/program"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

var twoExports = program.Program{
	Data: program.Data{Exports: []program.VarName{"A", "B"}},
}

var _ = Describe("Emitter", func() {
	var (
		mockCtrl   *gomock.Controller
		mockSource *MockSource
		emitter    *Emitter
		ctx        context.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockSource = NewMockSource(mockCtrl)
		emitter = Builder{}.WithSource(mockSource).Build("Emitter")
		ctx = context.Background()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should panic without a source", func() {
		Expect(func() { Builder{}.Build("Emitter") }).To(Panic())
	})

	It("should keep its name", func() {
		Expect(emitter.Name()).To(Equal("Emitter"))
	})

	It("should write the listing", func() {
		mockSource.EXPECT().Load(gomock.Any()).Return(program.Program{}, nil)

		var buf bytes.Buffer
		Expect(emitter.Emit(ctx, &buf)).To(Succeed())
		Expect(buf.String()).To(Equal(program.Program{}.UASM()))
	})

	It("should render with the configured printer", func() {
		emitter = Builder{}.
			WithSource(mockSource).
			WithPrinter(program.Printer{ExportStyle: program.CleanExports}).
			Build("Emitter")
		mockSource.EXPECT().Load(gomock.Any()).Return(twoExports, nil)

		text, err := emitter.Render(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("    .export A, B\n"))
	})

	It("should wrap load errors", func() {
		mockSource.EXPECT().Load(gomock.Any()).
			Return(program.Program{}, errors.New("no such file"))

		var buf bytes.Buffer
		err := emitter.Emit(ctx, &buf)
		Expect(err).To(MatchError("Emitter: load program: no such file"))
		Expect(buf.Len()).To(BeZero())
	})

	It("should wrap write errors", func() {
		mockSource.EXPECT().Load(gomock.Any()).Return(program.Program{}, nil)

		err := emitter.Emit(ctx, failingWriter{})
		Expect(err).To(MatchError("Emitter: write listing: disk full"))
	})

	It("should not write after cancellation", func() {
		cctx, cancel := context.WithCancel(ctx)
		mockSource.EXPECT().Load(gomock.Any()).DoAndReturn(
			func(context.Context) (program.Program, error) {
				cancel()
				return program.Program{}, nil
			})

		var buf bytes.Buffer
		err := emitter.Emit(cctx, &buf)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(buf.Len()).To(BeZero())
	})

	It("should trace what it rendered", func() {
		var logs bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{
			Level: LevelTrace,
		})))
		DeferCleanup(func() { slog.SetDefault(prev) })

		mockSource.EXPECT().Load(gomock.Any()).Return(twoExports, nil)

		_, err := emitter.Render(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(logs.String()).To(ContainSubstring(`"msg":"Rendered"`))
		Expect(logs.String()).To(ContainSubstring(`"DataExports":2`))
	})
})

var _ = Describe("Sources", func() {
	It("should return a static program", func() {
		p, err := StaticSource{Program: twoExports}.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(twoExports))
	})

	It("should load a file", func() {
		p, err := FileSource{Path: "../loader/testdata/tiny.yaml"}.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Code.Insts).To(HaveLen(2))
	})

	It("should honor a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := FileSource{Path: "../loader/testdata/tiny.yaml"}.Load(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})
})
