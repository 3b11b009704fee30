// Fixture factories keep e2e tests short:
//
//	f := fixtures.New(tdb.DB)
//	owner := f.CreateUser(t, fixtures.WithPassword("correct horse"))
//	hang := f.CreateHang(t, owner, func(o *fixtures.HangOpts) {
//	    o.Title = "Board games"
//	})
//	f.AddRSVP(t, hang, model.Fields{"name": "Ada"})
package fixtures
